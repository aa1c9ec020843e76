package entity

import (
	"time"
)

// AuthToken is an opaque bearer token bound one-to-one to a user. The key is
// a fixed-length random alphanumeric string and doubles as the primary key.
// A user has at most one live token; logout deletes the row.
type AuthToken struct {
	Key       string    `db:"key"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
