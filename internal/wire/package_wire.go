package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/internal/data/repository"
	"safari-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Browsing the catalogue is public
	r.Get("/api/safari-packages", packageHandler.GetPackages)
	r.Get("/api/safari-packages/{id}", packageHandler.GetPackageByID)

	// Creating packages requires a logged-in user
	r.With(middleware.AuthToken(repo.Token, repo.User, log)).
		Post("/api/safari-packages", packageHandler.CreatePackage)
}
