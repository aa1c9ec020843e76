package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/internal/data/repository"
	"safari-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProvider(
	r chi.Router,
	providerHandler *adaptor.ProviderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// The provider directory is public
	r.Get("/api/providers", providerHandler.GetProviders)

	// Registering a provider profile binds it to the authenticated user
	r.With(middleware.AuthToken(repo.Token, repo.User, log)).
		Post("/api/providers", providerHandler.CreateProvider)
}
