package service

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// ValidationError signals a missing or malformed input field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError signals a uniqueness or referential conflict
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError
func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a conflict
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
