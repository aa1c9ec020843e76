package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateEmail is returned when a user insert hits the unique
	// email constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateKey is returned when a token insert collides on the key
	// primary key. Callers regenerate the key and retry.
	ErrDuplicateKey = errors.New("token key already exists")

	// ErrDuplicateUserToken is returned when a token insert loses the race
	// on the one-token-per-user constraint. Callers fetch the winner.
	ErrDuplicateUserToken = errors.New("user already has a token")

	// ErrTokenNotFound is returned when a delete targets an absent token.
	ErrTokenNotFound = errors.New("token not found")
)

// uniqueViolation extracts the violated constraint name when err is a
// Postgres unique-violation, or "" otherwise.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
