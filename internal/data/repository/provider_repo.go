package repository

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Provider, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Provider, error)
	CountAll(ctx context.Context) (int64, error)
}

type providerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProviderRepository(db database.PgxIface, log *zap.Logger) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider")),
	}
}

func (pr *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	query := `
		INSERT INTO providers (user_id, company_name, licence_no, address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := pr.db.QueryRow(ctx, query,
		provider.UserID,
		provider.CompanyName,
		provider.LicenceNo,
		provider.Address,
		provider.Status,
	).Scan(&provider.ID)

	if err != nil {
		pr.log.Error("Failed to create provider",
			zap.Error(err),
			zap.Int64("user_id", provider.UserID),
		)
		return fmt.Errorf("create provider for user %d: %w", provider.UserID, err)
	}

	return nil
}

func (pr *providerRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Provider, error) {
	query := `
		SELECT id, user_id, company_name, licence_no, address, status
		FROM providers
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := pr.db.Query(ctx, query, userID)
	if err != nil {
		pr.log.Error("Failed to list providers for user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find providers for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanProviders(rows, pr.log)
}

func (pr *providerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Provider, error) {
	query := `
		SELECT id, user_id, company_name, licence_no, address, status
		FROM providers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := pr.db.Query(ctx, query, limit, offset)
	if err != nil {
		pr.log.Error("Failed to list providers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all providers: %w", err)
	}
	defer rows.Close()

	return scanProviders(rows, pr.log)
}

func scanProviders(rows pgx.Rows, log *zap.Logger) ([]*entity.Provider, error) {
	var providers []*entity.Provider
	for rows.Next() {
		var provider entity.Provider
		err := rows.Scan(
			&provider.ID,
			&provider.UserID,
			&provider.CompanyName,
			&provider.LicenceNo,
			&provider.Address,
			&provider.Status,
		)
		if err != nil {
			log.Error("Failed to scan provider row", zap.Error(err))
			return nil, fmt.Errorf("scan provider row: %w", err)
		}
		providers = append(providers, &provider)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate provider rows: %w", err)
	}

	return providers, nil
}

func (pr *providerRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM providers`

	var count int64
	if err := pr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		pr.log.Error("Failed to count providers", zap.Error(err))
		return 0, fmt.Errorf("count providers: %w", err)
	}

	return count, nil
}
