package service

import (
	"errors"

	"formpdf/internal/validation"
)

var (
	// ErrInvalidCode is returned when a requested code does not have the document code length.
	ErrInvalidCode = errors.New("document code must be 10 characters")
	// ErrNotFound is returned when no document is stored under a well-formed code.
	ErrNotFound = errors.New("document not found")
	// ErrCodeSpaceExhausted is returned when every generated code collided with a stored one.
	ErrCodeSpaceExhausted = errors.New("no unused document code after max attempts")
)

// ValidationError reports form fields that failed validation.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Detail()
}

// Detail is the client-facing summary of the offending fields.
func (e *ValidationError) Detail() string {
	return validation.Detail(e.Fields)
}
