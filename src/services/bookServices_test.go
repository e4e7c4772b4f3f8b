package services

import (
	"testing"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetBook(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)

	book := &models.BookModel{Title: "New Arrival", Author: "Some Author", PublishedYear: 2021}
	created, err := service.CreateBook(book)
	require.NoError(t, err)
	assert.Equal(t, models.BookAvailable, created.Status)
	assert.Nil(t, created.BorrowerId)

	fetched, err := service.GetBookByID(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "New Arrival", fetched.Title)

	_, err = service.GetBookByID(99999)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestGetAllBooksStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)
	borrowService := NewBorrowService(db, 3, service)

	first := createTestBook(t, db, "A First Book")
	createTestBook(t, db, "B Second Book")
	member := createTestMember(t, db, "John Doe", "john@example.com")

	_, err := borrowService.Borrow(first.Id, member.Id)
	require.NoError(t, err)

	all, err := service.GetAllBooks(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	borrowed := models.BookBorrowed
	borrowedBooks, err := service.GetAllBooks(&borrowed)
	require.NoError(t, err)
	require.Len(t, borrowedBooks, 1)
	assert.Equal(t, "A First Book", borrowedBooks[0].Title)

	available := models.BookAvailable
	availableBooks, err := service.GetAllBooks(&available)
	require.NoError(t, err)
	require.Len(t, availableBooks, 1)
	assert.Equal(t, "B Second Book", availableBooks[0].Title)
}

func TestBookCacheInvalidatedByMutations(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)

	createTestBook(t, db, "First")

	all, err := service.GetAllBooks(nil)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// A create through the service must not serve the stale list
	_, err = service.CreateBook(&models.BookModel{Title: "Second", Author: "Author", PublishedYear: 2022})
	require.NoError(t, err)

	all, err = service.GetAllBooks(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateBookKeepsAvailabilityOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)
	borrowService := NewBorrowService(db, 3, service)

	book := createTestBook(t, db, "Old Title")
	member := createTestMember(t, db, "John Doe", "john@example.com")
	_, err := borrowService.Borrow(book.Id, member.Id)
	require.NoError(t, err)

	updated, err := service.UpdateBook(book.Id, &models.BookModel{
		Title:  "New Title",
		Status: models.BookAvailable, // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, models.BookBorrowed, updated.Status)
	require.NotNil(t, updated.BorrowerId)

	_, err = service.UpdateBook(99999, &models.BookModel{Title: "Ghost"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestGetAllBooksReturnsCopies(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)

	createTestBook(t, db, "Untouchable")

	first, err := service.GetAllBooks(nil)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating a returned slice must not bleed into later reads
	first[0].Title = "Scribbled Over"

	second, err := service.GetAllBooks(nil)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Untouchable", second[0].Title)
}

func TestDeleteBook(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)

	book := createTestBook(t, db, "Short Lived")
	require.NoError(t, service.DeleteBook(book.Id))

	_, err := service.GetBookByID(book.Id)
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, service.DeleteBook(book.Id), ErrBookNotFound)
}

func TestDeleteBorrowedBookRefused(t *testing.T) {
	db := setupTestDB(t)
	service := NewBookService(db)
	borrowService := NewBorrowService(db, 3, service)

	book := createTestBook(t, db, "On Loan")
	member := createTestMember(t, db, "John Doe", "john@example.com")
	_, err := borrowService.Borrow(book.Id, member.Id)
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteBook(book.Id), ErrBookOnLoan)

	// The refusal must leave the book and its holder untouched
	fetched, err := service.GetBookByID(book.Id)
	require.NoError(t, err)
	assert.Equal(t, models.BookBorrowed, fetched.Status)

	_, err = borrowService.Return(book.Id)
	require.NoError(t, err)
	require.NoError(t, service.DeleteBook(book.Id))

	// The closed borrow record survives with its book reference nulled
	var records []models.BorrowRecordModel
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].BookId)
	assert.NotNil(t, records[0].ReturnedAt)
}
