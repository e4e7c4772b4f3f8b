package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway sqlite database in a temp dir. WAL plus a
// busy timeout lets the concurrency tests hammer it from several goroutines.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", filepath.Join(t.TempDir(), "library.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.MemberModel{},
		&models.BookModel{},
		&models.BorrowRecordModel{},
	))

	return db
}

func createTestBook(t *testing.T, db *gorm.DB, title string) *models.BookModel {
	t.Helper()

	book := &models.BookModel{
		Title:         title,
		Author:        "Test Author",
		PublishedYear: 2020,
		Status:        models.BookAvailable,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func createTestMember(t *testing.T, db *gorm.DB, name, email string) *models.MemberModel {
	t.Helper()

	member := &models.MemberModel{
		Name:    name,
		Email:   email,
		Address: "123 Main St",
		Phone:   "555-1234",
	}
	require.NoError(t, db.Create(member).Error)
	return member
}
