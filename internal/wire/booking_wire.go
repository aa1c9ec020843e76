package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/internal/data/repository"
	"safari-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Bookings carry their own contact details, so guests can create them
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// Listing bookings requires a logged-in user
	r.With(middleware.AuthToken(repo.Token, repo.User, log)).
		Get("/api/bookings", bookingHandler.GetBookings)
}
