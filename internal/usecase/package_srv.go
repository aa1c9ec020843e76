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

type PackageService interface {
	GetPackages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PackageResponse], error)
	GetPackageByID(ctx context.Context, id int64) (*response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
}

type packageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPackageService(repo *repository.Repository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
	}
}

func (s *packageService) GetPackages(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PackageResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	packages, err := s.repo.Package.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get safari packages",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get safari packages: %w", err)
	}

	total, err := s.repo.Package.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count safari packages", zap.Error(err))
		return nil, fmt.Errorf("count safari packages: %w", err)
	}

	packageResponses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		packageResponses[i] = response.PackageToResponse(pkg)
	}

	return response.NewPaginatedResponse(packageResponses, req.Page, limit, total), nil
}

func (s *packageService) GetPackageByID(ctx context.Context, id int64) (*response.PackageResponse, error) {
	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get safari package %d: %w", id, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("safari package not found")
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	pkg := &entity.SafariPackage{
		Name:         req.Name,
		Description:  req.Description,
		GroupSizeMin: req.GroupSizeMin,
		GroupSizeMax: req.GroupSizeMax,
		Picture:      req.Picture,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		s.log.Error("Failed to create safari package", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create safari package")
	}

	s.log.Info("Safari package created",
		zap.Int64("package_id", pkg.ID),
		zap.String("name", pkg.Name))

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}
