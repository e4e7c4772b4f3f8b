package controllers

import (
	"net/http"
	"strconv"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/dtos"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/models"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/responses"
	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service       *services.BookService
	borrowService *services.BorrowService
}

func NewBookController(service *services.BookService, borrowService *services.BorrowService) *BookController {
	return &BookController{service: service, borrowService: borrowService}
}

// GetAllBooks handles GET requests to retrieve all book records,
// optionally filtered by ?status=available|borrowed
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	var status *models.BookStatus
	if raw := ctx.Query("status"); raw != "" {
		value := models.BookStatus(raw)
		if value != models.BookAvailable && value != models.BookBorrowed {
			responses.Error(ctx, http.StatusBadRequest, "Invalid status. Must be one of: available, borrowed")
			return
		}
		status = &value
	}

	books, err := c.service.GetAllBooks(status)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, books)
}

// GetBookByID handles GET requests to retrieve a book by its ID
func (c *BookController) GetBookByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := c.service.GetBookByID(id)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, book)
}

// CreateBook handles POST requests to create a new book record
func (c *BookController) CreateBook(ctx *gin.Context) {
	var book models.BookModel
	if err := ctx.ShouldBindJSON(&book); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if msgs := validateBook(&book); len(msgs) > 0 {
		responses.Error(ctx, http.StatusBadRequest, msgs...)
		return
	}

	createdBook, err := c.service.CreateBook(&book)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusCreated, createdBook)
}

// UpdateBook handles PUT and PATCH requests to update an existing book record
func (c *BookController) UpdateBook(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var book models.BookModel
	if err := ctx.ShouldBindJSON(&book); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}

	updatedBook, err := c.service.UpdateBook(id, &book)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, updatedBook)
}

// DeleteBook handles DELETE requests to remove a book record by its ID
func (c *BookController) DeleteBook(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid book ID")
		return
	}

	if err := c.service.DeleteBook(id); err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, nil)
}

// BorrowBook handles POST requests to borrow a book for a member.
// Expects: {"member_id": <member_id>}
func (c *BookController) BorrowBook(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var req dtos.BorrowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		responses.Error(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if req.MemberId == nil {
		responses.Error(ctx, http.StatusBadRequest, "member_id: This field is required.")
		return
	}

	book, err := c.borrowService.Borrow(id, *req.MemberId)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, book)
}

// ReturnBook handles POST requests to return a borrowed book
func (c *BookController) ReturnBook(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		responses.Error(ctx, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := c.borrowService.Return(id)
	if err != nil {
		responses.Error(ctx, statusFromError(err), err.Error())
		return
	}
	responses.JSON(ctx, http.StatusOK, book)
}

func validateBook(book *models.BookModel) []string {
	var msgs []string
	if book.Title == "" {
		msgs = append(msgs, "title: This field is required.")
	}
	if book.Author == "" {
		msgs = append(msgs, "author: This field is required.")
	}
	if book.PublishedYear == 0 {
		msgs = append(msgs, "publishedYear: This field is required.")
	}
	if book.Status != "" && book.Status != models.BookAvailable && book.Status != models.BookBorrowed {
		msgs = append(msgs, "Invalid status. Must be one of: available, borrowed")
	}
	return msgs
}
