package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrNotFound              = errors.New("resource not found")
	ErrInternalError         = errors.New("internal error")
	ErrDeliveryNotConfigured = errors.New("notification delivery is not configured")

	// errNotOwned marks an ErrNotFound caused by a record of another user.
	errNotOwned = errors.New("record belongs to another user")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// isAbsent reports a not-found error for a record that does not exist at all.
func isAbsent(err error) bool {
	return errors.Is(err, ErrNotFound) && !errors.Is(err, errNotOwned)
}
