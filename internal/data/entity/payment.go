package entity

import (
	"time"
)

// Payment is a flat payment record against a booking.
type Payment struct {
	ID            int64     `db:"id"`
	BookingID     int64     `db:"booking_id"`
	PaymentMethod string    `db:"payment_method"`
	Amount        float64   `db:"amount"`
	PaymentDate   time.Time `db:"payment_date"`
}
