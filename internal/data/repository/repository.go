package repository

import (
	"safari-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Token    TokenRepository
	Package  PackageRepository
	Booking  BookingRepository
	Payment  PaymentRepository
	Provider ProviderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Token:    NewTokenRepository(db, log),
		Package:  NewPackageRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Provider: NewProviderRepository(db, log),
	}
}
