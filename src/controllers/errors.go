package controllers

import (
	"errors"
	"net/http"

	"github.com/BiblioDesk/BiblioDesk-Backend/src/services"
	"gorm.io/gorm"
)

// statusFromError maps service errors onto the HTTP taxonomy: validation 400,
// authentication 401, missing ids 404, invalid state transitions 409.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrBookNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrBookNotAvailable),
		errors.Is(err, services.ErrBookNotBorrowed),
		errors.Is(err, services.ErrBookOnLoan),
		errors.Is(err, services.ErrMemberHasLoans):
		return http.StatusConflict
	case errors.Is(err, services.ErrBorrowLimitReached),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
