package usecase

import (
	"errors"
)

var (
	// ErrUserMissingOrInactive deliberately does not distinguish an
	// unknown email from a deactivated account at login time.
	ErrUserMissingOrInactive = errors.New("User with this email does not exist or is inactive.")

	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("Invalid password.")

	// ErrInvalidToken is returned when a token key resolves to nothing.
	ErrInvalidToken = errors.New("Invalid token")

	// ErrUserInactive is returned when a live token belongs to a
	// deactivated user. Distinct from ErrInvalidToken so the caller can
	// tell a revoked token from a disabled account.
	ErrUserInactive = errors.New("User is inactive")
)
