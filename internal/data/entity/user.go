package entity

import (
	"time"
)

type UserRole string

const (
	RoleUser            UserRole = "user"
	RoleServiceProvider UserRole = "service_provider"
	RoleAdmin           UserRole = "admin"
)

// ValidRole reports whether role is one of the accepted user roles.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleUser, RoleServiceProvider, RoleAdmin:
		return true
	}
	return false
}

// User is the credential store record. PasswordDigest only ever holds the
// salted one-way digest, never the raw password.
type User struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordDigest string    `db:"password"`
	Phone          string    `db:"phone"`
	Company        string    `db:"company"`
	Role           UserRole  `db:"role"`
	IsActive       bool      `db:"is_active"`
	DateCreated    time.Time `db:"date_created"`
}
