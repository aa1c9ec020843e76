package usecase

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ProviderService interface {
	CreateProvider(ctx context.Context, userID int64, req *request.ProviderRequest) (*response.ProviderResponse, error)
	GetProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProviderResponse], error)
}

type providerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProviderService(repo *repository.Repository, log *zap.Logger) ProviderService {
	return &providerService{
		repo: repo,
		log:  log.With(zap.String("service", "provider")),
	}
}

// CreateProvider registers a provider profile for the authenticated user.
func (s *providerService) CreateProvider(ctx context.Context, userID int64, req *request.ProviderRequest) (*response.ProviderResponse, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}

	provider := &entity.Provider{
		UserID:      userID,
		CompanyName: req.CompanyName,
		LicenceNo:   req.LicenceNo,
		Address:     req.Address,
		Status:      status,
	}

	if err := s.repo.Provider.Create(ctx, provider); err != nil {
		s.log.Error("Failed to create provider", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to create provider")
	}

	s.log.Info("Provider registered",
		zap.Int64("provider_id", provider.ID),
		zap.Int64("user_id", userID))

	resp := response.ProviderToResponse(provider)
	return &resp, nil
}

func (s *providerService) GetProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProviderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	providers, err := s.repo.Provider.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get providers", zap.Error(err))
		return nil, fmt.Errorf("get providers: %w", err)
	}

	total, err := s.repo.Provider.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count providers", zap.Error(err))
		return nil, fmt.Errorf("count providers: %w", err)
	}

	providerResponses := make([]response.ProviderResponse, len(providers))
	for i, provider := range providers {
		providerResponses[i] = response.ProviderToResponse(provider)
	}

	return response.NewPaginatedResponse(providerResponses, req.Page, limit, total), nil
}
