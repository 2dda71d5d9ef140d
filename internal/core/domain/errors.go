package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers and the HTTP error handler match on these with
// errors.Is, so services wrap them rather than replace them.
var (
	ErrAuthMissing = errors.New("authentication required")
	ErrAuthInvalid = errors.New("invalid or expired token")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("resource not found or not authorized")
)

var (
	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrAuthInvalid)
	ErrTokenMalformed = fmt.Errorf("%w: token malformed", ErrAuthInvalid)

	ErrEmailInUse = fmt.Errorf("%w: email already in use", ErrConflict)

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Invalid returns an ErrValidation carrying a human readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
