package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a request was rejected before touching the store.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidToken indicates an unknown or missing session token.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError wraps ErrValidation with a user-facing message.
func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
