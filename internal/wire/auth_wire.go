package wire

import (
	"safari-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth registers the session endpoints. Logout, validate-token and
// protected parse the Authorization header themselves instead of going
// through the token middleware: a missing or unknown token is 400 on the
// first two but 401 on protected.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)
	r.Get("/api/validate-token", authHandler.ValidateToken)
	r.Get("/api/protected", authHandler.Protected)
}
