package middleware

import (
	"net/http"
	"strings"

	"safari-booking/internal/data/repository"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

// tokenScheme is the literal, case-sensitive Authorization scheme prefix.
const tokenScheme = "Token "

// AuthToken guards a route with bearer-token authentication. The token must
// resolve to an active user. Failures here are 401, unlike the 400s the
// logout and validate-token endpoints return for their own header parsing.
func AuthToken(tokenRepo repository.TokenRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			key, ok := strings.CutPrefix(authHeader, tokenScheme)
			if !ok || key == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			token, err := tokenRepo.FindByKey(r.Context(), key)
			if err != nil {
				logger.Error("Failed to look up token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if token == nil {
				logger.Warn("Request with unknown token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), token.UserID)
			if err != nil {
				logger.Error("Failed to load token owner",
					zap.Error(err),
					zap.Int64("user_id", token.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil || !user.IsActive {
				logger.Warn("Token owner missing or inactive", zap.Int64("user_id", token.UserID))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, key)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
