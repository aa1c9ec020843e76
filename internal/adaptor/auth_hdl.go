package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"safari-booking/internal/data/repository"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

// tokenScheme is the literal, case-sensitive Authorization prefix.
const tokenScheme = "Token "

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// tokenFromHeader extracts the bearer key from "Authorization: Token <key>".
func tokenFromHeader(r *http.Request) (string, bool) {
	key, ok := strings.CutPrefix(r.Header.Get("Authorization"), tokenScheme)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseJSON(w, http.StatusBadRequest, false, "", nil, validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.ResponseJSON(w, http.StatusBadRequest, false, "", nil,
				map[string]string{"email": "A user with this email already exists"})
			return
		}
		h.log.Error("Register failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		User    *response.UserResponse `json:"user"`
	}{
		Success: true,
		Message: "User created successfully",
		User:    user,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	data, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserMissingOrInactive),
			errors.Is(err, usecase.ErrInvalidPassword):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Login failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Login successful", data)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	key, ok := tokenFromHeader(r)
	if !ok {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	if err := h.service.Logout(r.Context(), key); err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			utils.ResponseBadRequest(w, "Invalid token", nil)
			return
		}
		h.log.Error("Logout failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

// validateResponse is the bespoke body shape of GET /api/validate-token.
type validateResponse struct {
	Valid   bool                   `json:"valid"`
	Message string                 `json:"message,omitempty"`
	User    *response.UserResponse `json:"user,omitempty"`
}

// ValidateToken handles GET /api/validate-token
func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	key, ok := tokenFromHeader(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, validateResponse{Valid: false, Message: "No token provided"})
		return
	}

	user, err := h.service.ValidateToken(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			utils.WriteJSON(w, http.StatusBadRequest, validateResponse{Valid: false, Message: "Invalid token"})
		case errors.Is(err, usecase.ErrUserInactive):
			utils.WriteJSON(w, http.StatusBadRequest, validateResponse{Valid: false, Message: "User is inactive"})
		default:
			h.log.Error("Token validation failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, validateResponse{Valid: true, User: user})
}

// Protected handles GET /api/protected. Unlike logout and validate-token,
// authentication failures here are 401.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	key, ok := tokenFromHeader(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}

	user, err := h.service.Authenticate(r.Context(), key)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			return
		}
		h.log.Error("Protected access failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, struct {
		Message       string `json:"message"`
		UserRole      string `json:"user_role"`
		ProtectedData string `json:"protected_data"`
	}{
		Message:       "Hello " + user.Name + "!",
		UserRole:      string(user.Role),
		ProtectedData: "This is protected content",
	})
}
