package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrShopInactive    = errors.New("shop is not active")
	ErrInvalidHMAC     = errors.New("hmac verification failed")
	ErrStateMismatch   = errors.New("oauth state mismatch")
	ErrUpstreamFailure = errors.New("upstream platform call failed")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// Upstream surfaces a failed platform call, keeping the upstream error
// body in the message for diagnostics.
func Upstream(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, ErrUpstreamFailure)
}
