package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type BookService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewBookService(db *gorm.DB) *BookService {
	service := &BookService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *BookService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *BookService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *BookService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *BookService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// InvalidateBookCache drops every cached read that may show the given book.
// The borrow service calls this after flipping availability.
func (s *BookService) InvalidateBookCache(id int) {
	s.invalidateCache(fmt.Sprintf("book_%d", id))
	s.invalidateCache("books")
}

// GetAllBooks retrieves all Book records, optionally filtered by status
func (s *BookService) GetAllBooks(status *models.BookStatus) ([]models.BookModel, error) {
	cacheKey := "books_all"
	if status != nil {
		cacheKey = fmt.Sprintf("books_status_%s", *status)
	}

	// Callers get their own slice so the cached copy stays untouched
	if cached, found := s.getCache(cacheKey); found {
		books := cached.([]models.BookModel)
		return append([]models.BookModel(nil), books...), nil
	}

	var books []models.BookModel
	query := s.db.Preload("Borrower").Order("title")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}

	s.setCache(cacheKey, append([]models.BookModel(nil), books...), 5*time.Minute)

	return books, nil
}

// GetBookByID retrieves a Book record by its ID
func (s *BookService) GetBookByID(id int) (*models.BookModel, error) {
	cacheKey := fmt.Sprintf("book_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		book := cached.(models.BookModel)
		return &book, nil
	}

	var book models.BookModel
	result := s.db.Preload("Borrower").First(&book, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, result.Error
	}

	s.setCache(cacheKey, book, 5*time.Minute)

	return &book, nil
}

// CreateBook creates a new Book record in the database
func (s *BookService) CreateBook(book *models.BookModel) (*models.BookModel, error) {
	if book.Status == "" {
		book.Status = models.BookAvailable
	}
	// New books never start with a holder
	book.BorrowerId = nil
	book.Borrower = nil

	result := s.db.Create(book)
	if result.Error != nil {
		return nil, result.Error
	}

	s.invalidateCache("books")

	return book, nil
}

// UpdateBook updates an existing Book record. Availability and holder are
// owned by the borrow workflow and cannot be changed here.
func (s *BookService) UpdateBook(id int, updatedBook *models.BookModel) (*models.BookModel, error) {
	var book models.BookModel
	result := s.db.First(&book, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, result.Error
	}

	// Set the ID to ensure we update the correct record
	updatedBook.Id = id

	result = s.db.Model(&book).Omit("status", "borrower_id").Updates(updatedBook)
	if result.Error != nil {
		return nil, result.Error
	}

	// Fetch the updated record
	result = s.db.Preload("Borrower").First(&book, id)
	if result.Error != nil {
		return nil, result.Error
	}

	s.InvalidateBookCache(id)

	return &book, nil
}

// DeleteBook deletes a Book record by its ID. A borrowed book cannot be
// deleted; the delete is conditional on availability so the refusal holds
// against a concurrent borrow. Closed borrow records keep the book's history
// with their reference nulled.
func (s *BookService) DeleteBook(id int) error {
	result := s.db.Where("status = ?", models.BookAvailable).Delete(&models.BookModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var book models.BookModel
		if err := s.db.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		return ErrBookOnLoan
	}

	s.InvalidateBookCache(id)

	return nil
}
