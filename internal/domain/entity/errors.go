package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates that the provided input is invalid.
// Validation errors across the domain layer match it via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidInput) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
