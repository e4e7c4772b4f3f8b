package services

import "errors"

// Sentinel errors returned by the services. Controllers map them to HTTP
// status codes.
var (
	ErrBookNotFound       = errors.New("book not found")
	ErrBookNotAvailable   = errors.New("this book is already borrowed")
	ErrBookNotBorrowed    = errors.New("this book is not currently borrowed")
	ErrBookOnLoan         = errors.New("this book is currently borrowed and cannot be deleted")
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberHasLoans     = errors.New("member has borrowed books and cannot be deleted")
	ErrEmailTaken         = errors.New("a member with this email already exists")
	ErrBorrowLimitReached = errors.New("member has reached the maximum number of borrowed books")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
