package services

import (
	"errors"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

// BorrowService owns the AVAILABLE <-> BORROWED transition. Both transitions
// run as a single database transaction built around conditional updates, so
// exactly one of any set of concurrent borrows of the same book can succeed
// regardless of how many server processes are running.
type BorrowService struct {
	db          *gorm.DB
	borrowLimit int
	bookService *BookService // optional, for cache invalidation
}

// NewBorrowService creates a new instance of BorrowService.
// bookService may be nil when no cache invalidation is needed.
func NewBorrowService(db *gorm.DB, borrowLimit int, bookService *BookService) *BorrowService {
	return &BorrowService{
		db:          db,
		borrowLimit: borrowLimit,
		bookService: bookService,
	}
}

// BorrowLimit returns the configured per-member cap on open loans.
func (s *BorrowService) BorrowLimit() int {
	return s.borrowLimit
}

// Borrow transitions a book from available to borrowed on behalf of a member
// and opens a borrow record. The member's counter is raised first with a
// conditional update so the cap holds even under concurrent borrows of
// different books; a failure at any later step rolls it back.
func (s *BorrowService) Borrow(bookId, memberId int) (*models.BookModel, error) {
	var book models.BookModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.MemberModel{}).
			Where("id = ? AND active_borrows < ?", memberId, s.borrowLimit).
			Update("active_borrows", gorm.Expr("active_borrows + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var member models.MemberModel
			if err := tx.First(&member, memberId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMemberNotFound
				}
				return err
			}
			return ErrBorrowLimitReached
		}

		res = tx.Model(&models.BookModel{}).
			Where("id = ? AND status = ?", bookId, models.BookAvailable).
			Updates(map[string]interface{}{
				"status":      models.BookBorrowed,
				"borrower_id": memberId,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&models.BookModel{}, bookId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrBookNotFound
				}
				return err
			}
			return ErrBookNotAvailable
		}

		record := models.BorrowRecordModel{
			BookId:     &bookId,
			MemberId:   &memberId,
			BorrowedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return tx.Preload("Borrower").First(&book, bookId).Error
	})
	if err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateBookCache(bookId)
	}

	return &book, nil
}

// Return transitions a book from borrowed back to available, lowers the
// holder's counter and closes the open borrow record.
func (s *BorrowService) Return(bookId int) (*models.BookModel, error) {
	var book models.BookModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var current models.BookModel
		if err := tx.First(&current, bookId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		res := tx.Model(&models.BookModel{}).
			Where("id = ? AND status = ?", bookId, models.BookBorrowed).
			Updates(map[string]interface{}{
				"status":      models.BookAvailable,
				"borrower_id": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookNotBorrowed
		}

		if current.BorrowerId != nil {
			if err := tx.Model(&models.MemberModel{}).
				Where("id = ? AND active_borrows > 0", *current.BorrowerId).
				Update("active_borrows", gorm.Expr("active_borrows - 1")).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		if err := tx.Model(&models.BorrowRecordModel{}).
			Where("book_id = ? AND returned_at IS NULL", bookId).
			Update("returned_at", now).Error; err != nil {
			return err
		}

		return tx.First(&book, bookId).Error
	})
	if err != nil {
		return nil, err
	}

	if s.bookService != nil {
		s.bookService.InvalidateBookCache(bookId)
	}

	return &book, nil
}

// ListBorrowRecords retrieves the full loan audit trail, newest first
func (s *BorrowService) ListBorrowRecords() ([]models.BorrowRecordModel, error) {
	var records []models.BorrowRecordModel

	result := s.db.
		Preload("Book").
		Preload("Member").
		Order("borrowed_at DESC").
		Find(&records)

	return records, result.Error
}
