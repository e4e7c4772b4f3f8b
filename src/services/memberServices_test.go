package services

import (
	"testing"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberResetsCounter(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)

	member := &models.MemberModel{
		Name:          "John Doe",
		Email:         "john@example.com",
		Address:       "123 Main St",
		Phone:         "555-1234",
		ActiveBorrows: 7, // client-supplied garbage
	}
	created, err := service.CreateMember(member)
	require.NoError(t, err)
	assert.Equal(t, 0, created.ActiveBorrows)
	assert.False(t, created.JoinDate.IsZero())
}

func TestCreateMemberDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)

	createTestMember(t, db, "John Doe", "john@example.com")

	_, err := service.CreateMember(&models.MemberModel{Name: "Impostor", Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateMember(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)

	member := createTestMember(t, db, "John Doe", "john@example.com")
	createTestMember(t, db, "Jane Doe", "jane@example.com")

	updated, err := service.UpdateMember(member.Id, &models.MemberModel{Phone: "555-9999"})
	require.NoError(t, err)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "John Doe", updated.Name)

	// Moving onto another member's email is rejected
	_, err = service.UpdateMember(member.Id, &models.MemberModel{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Keeping the same email is fine
	_, err = service.UpdateMember(member.Id, &models.MemberModel{Email: "john@example.com"})
	assert.NoError(t, err)

	_, err = service.UpdateMember(99999, &models.MemberModel{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateMemberCannotTouchCounter(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)
	borrowService := NewBorrowService(db, 3, nil)

	member := createTestMember(t, db, "John Doe", "john@example.com")
	book := createTestBook(t, db, "Borrowed Book")
	_, err := borrowService.Borrow(book.Id, member.Id)
	require.NoError(t, err)

	updated, err := service.UpdateMember(member.Id, &models.MemberModel{ActiveBorrows: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ActiveBorrows)
}

func TestDeleteMember(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)

	member := createTestMember(t, db, "John Doe", "john@example.com")
	require.NoError(t, service.DeleteMember(member.Id))

	_, err := service.GetMemberByID(member.Id)
	assert.ErrorIs(t, err, ErrMemberNotFound)

	assert.ErrorIs(t, service.DeleteMember(member.Id), ErrMemberNotFound)
}

func TestDeleteMemberWithOpenLoanRefused(t *testing.T) {
	db := setupTestDB(t)
	service := NewMemberService(db)
	borrowService := NewBorrowService(db, 3, nil)

	member := createTestMember(t, db, "John Doe", "john@example.com")
	book := createTestBook(t, db, "Borrowed Book")
	_, err := borrowService.Borrow(book.Id, member.Id)
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteMember(member.Id), ErrMemberHasLoans)

	_, err = service.GetMemberByID(member.Id)
	require.NoError(t, err)

	_, err = borrowService.Return(book.Id)
	require.NoError(t, err)
	require.NoError(t, service.DeleteMember(member.Id))

	// The closed borrow record survives with its member reference nulled
	var records []models.BorrowRecordModel
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].MemberId)
	assert.NotNil(t, records[0].ReturnedAt)
}
