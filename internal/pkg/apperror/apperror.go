package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a classified error carried from the service layer to the HTTP
// boundary. Message is safe for clients; Err keeps the cause for logs only.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func NewRateLimited(message string) *AppError {
	return &AppError{Status: fiber.StatusTooManyRequests, Message: message}
}

func NewInternal(message string, cause error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message, Err: cause}
}

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
