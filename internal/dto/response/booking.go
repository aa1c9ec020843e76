package response

import (
	"time"

	"safari-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                  int64     `json:"id"`
	SafariPackageID     int64     `json:"safari_package"`
	StartDate           string    `json:"start_date"`
	Participants        int       `json:"participants"`
	SpecialRequirements string    `json:"special_requirements"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	CreatedAt           time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                  booking.ID,
		SafariPackageID:     booking.SafariPackageID,
		StartDate:           booking.StartDate.Format("2006-01-02"),
		Participants:        booking.Participants,
		SpecialRequirements: booking.SpecialRequirements,
		FirstName:           booking.FirstName,
		LastName:            booking.LastName,
		Email:               booking.Email,
		Phone:               booking.Phone,
		CreatedAt:           booking.CreatedAt,
	}
}
