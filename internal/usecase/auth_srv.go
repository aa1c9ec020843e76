package usecase

import (
	"context"
	"errors"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"
	"safari-booking/pkg/password"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginData, error)
	Logout(ctx context.Context, key string) error
	ValidateToken(ctx context.Context, key string) (*response.UserResponse, error)
	Authenticate(ctx context.Context, key string) (*entity.User, error)
}

type authService struct {
	repo   *repository.Repository
	hasher password.Hasher
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	hasher password.Hasher,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		hasher: hasher,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a user account. The raw password is hashed before it
// reaches the repository and is never logged.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	role := entity.UserRole(req.Role)
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordDigest: digest,
		Phone:          req.Phone,
		Company:        req.Company,
		Role:           role,
		IsActive:       true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Warn("Registration with duplicate email", zap.String("email", req.Email))
			return nil, repository.ErrDuplicateEmail
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Login verifies credentials against the active user for the email and
// hands out the user's token, minting one only if none exists.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginData, error) {
	user, err := s.repo.User.FindActiveByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login for missing or inactive user", zap.String("email", req.Email))
		return nil, ErrUserMissingOrInactive
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordDigest)
	if err != nil {
		s.log.Error("Failed to verify password", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to verify password")
	}
	if !ok {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidPassword
	}

	token, err := s.issueOrGet(ctx, user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	resp := response.LoginToResponse(user, token)
	return &resp, nil
}

// Logout revokes the token. Revocation is unconditional: any caller holding
// the key may revoke it, there is no ownership check against the requester.
func (s *authService) Logout(ctx context.Context, key string) error {
	err := s.repo.Token.DeleteByKey(ctx, key)
	if errors.Is(err, repository.ErrTokenNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		s.log.Error("Failed to revoke token", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// ValidateToken confirms the key resolves to an active user. An unknown key
// and a deactivated owner fail differently on purpose.
func (s *authService) ValidateToken(ctx context.Context, key string) (*response.UserResponse, error) {
	user, err := s.Authenticate(ctx, key)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		s.log.Warn("Token for inactive user", zap.Int64("user_id", user.ID))
		return nil, ErrUserInactive
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Authenticate resolves a token key to its owning user. It does not check
// the active flag; callers layer that where the distinction matters.
func (s *authService) Authenticate(ctx context.Context, key string) (*entity.User, error) {
	token, err := s.repo.Token.FindByKey(ctx, key)
	if err != nil {
		s.log.Error("Failed to look up token", zap.Error(err))
		return nil, fmt.Errorf("failed to look up token")
	}
	if token == nil {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.User.FindByID(ctx, token.UserID)
	if err != nil {
		s.log.Error("Failed to load token owner", zap.Error(err), zap.Int64("user_id", token.UserID))
		return nil, fmt.Errorf("failed to load user")
	}
	if user == nil {
		// Owner row gone but token survived; treat as a bad token.
		return nil, ErrInvalidToken
	}

	return user, nil
}

// issueOrGet returns the user's live token, creating one if absent. A lost
// race on the one-token-per-user constraint resolves to the winner's token;
// a key collision regenerates and retries.
func (s *authService) issueOrGet(ctx context.Context, user *entity.User) (*entity.AuthToken, error) {
	existing, err := s.repo.Token.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	retries := s.config.Auth.TokenIssueRetries
	if retries < 1 {
		retries = 1
	}

	for attempt := 0; attempt < retries; attempt++ {
		key, err := utils.GenerateTokenKey(s.config.Auth.TokenLength)
		if err != nil {
			return nil, err
		}

		token := &entity.AuthToken{Key: key, UserID: user.ID}
		err = s.repo.Token.Create(ctx, token)
		switch {
		case err == nil:
			return token, nil

		case errors.Is(err, repository.ErrDuplicateUserToken):
			// A concurrent login won; hand out its token instead.
			winner, err := s.repo.Token.FindByUserID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
			if winner != nil {
				return winner, nil
			}
			// Winner logged out in between; take another attempt.

		case errors.Is(err, repository.ErrDuplicateKey):
			s.log.Warn("Token key collision, regenerating", zap.Int64("user_id", user.ID))

		default:
			return nil, err
		}
	}

	return nil, fmt.Errorf("issue token for user %d: retries exhausted", user.ID)
}
