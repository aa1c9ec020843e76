package adaptor

import (
	"safari-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Package  *PackageHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Provider *ProviderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Package:  NewPackageHandler(service.Package, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Provider: NewProviderHandler(service.Provider, log),
	}
}
