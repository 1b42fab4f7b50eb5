package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and controllers.
var (
	// ErrNotFound is returned for point reads that matched no document.
	ErrNotFound = errors.New("item not found")

	// ErrTokenNotFound is returned when a user has no registered device token.
	ErrTokenNotFound = errors.New("user token not found")

	// ErrPermissionDenied is returned when a caller lacks the required role.
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError marks a malformed or self-referential input document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
