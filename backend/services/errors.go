package services

import (
	"errors"
	"fmt"
)

// Sentinel errors checked with errors.Is by the HTTP layer.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrForbidden      = errors.New("admin access required")
	ErrIncomplete     = errors.New("course is not completed")
)

// FieldError indicates a problem with a specific input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return fmt.Sprintf("validation error: %s %s", e.Fields[0].Field, e.Fields[0].Error)
}

// storageError wraps a database failure so it is distinguishable from the
// domain taxonomy. The core never retries; that is the store client's business.
func storageError(op string, err error) error {
	return fmt.Errorf("storage: %s: %w", op, err)
}
