package models

import "errors"

// Error kinds. Every domain error unwraps to exactly one of these.
var (
	// ErrValidation marks malformed, missing or oversized input
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced column or card that does not exist
	ErrNotFound = errors.New("not found")
)

// Error is a domain error with a caller-facing message.
// Compare with errors.Is against either the sentinel value itself or its Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewValidationError creates an error of kind ErrValidation
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewNotFoundError creates an error of kind ErrNotFound
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
