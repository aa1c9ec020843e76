package usecase

import (
	"safari-booking/internal/data/repository"
	"safari-booking/pkg/password"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Package  PackageService
	Booking  BookingService
	Payment  PaymentService
	Provider ProviderService
}

func NewService(repo *repository.Repository, hasher password.Hasher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, hasher, config, log),
		Package:  NewPackageService(repo, log),
		Booking:  NewBookingService(repo, log),
		Payment:  NewPaymentService(repo, log),
		Provider: NewProviderService(repo, log),
	}
}
