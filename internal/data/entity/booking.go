package entity

import (
	"time"
)

// Booking records a reservation against a safari package. Contact details
// are captured inline so a booking does not require an account.
type Booking struct {
	ID                  int64     `db:"id"`
	SafariPackageID     int64     `db:"safari_package_id"`
	StartDate           time.Time `db:"start_date"`
	Participants        int       `db:"participants"`
	SpecialRequirements string    `db:"special_requirements"`
	FirstName           string    `db:"first_name"`
	LastName            string    `db:"last_name"`
	Email               string    `db:"email"`
	Phone               string    `db:"phone"`
	CreatedAt           time.Time `db:"created_at"`
}
