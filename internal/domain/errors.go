package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight query service.
var (
	// ErrInvalidRequest is returned when request input fails validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write collides with an existing record.
	ErrConflict = errors.New("conflict")

	// ErrRowShape is returned when a result row does not match the expected column layout.
	// It signals a mismatch between the SELECT list and the projector, not bad data.
	ErrRowShape = errors.New("result row shape mismatch")
)

// ValidationError describes a single invalid field.
// It unwraps to ErrInvalidRequest.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidRequest).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsRowShape reports whether err is a row shape mismatch.
func IsRowShape(err error) bool {
	return errors.Is(err, ErrRowShape)
}
