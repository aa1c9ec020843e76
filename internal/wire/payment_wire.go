package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/internal/data/repository"
	"safari-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthToken(repo.Token, repo.User, log)

	r.With(auth).Post("/api/payments", paymentHandler.CreatePayment)
	r.With(auth).Get("/api/payments", paymentHandler.GetPayments)
}
