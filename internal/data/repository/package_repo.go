package repository

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.SafariPackage) error
	FindByID(ctx context.Context, id int64) (*entity.SafariPackage, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.SafariPackage, error)
	CountAll(ctx context.Context) (int64, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func (pr *packageRepository) Create(ctx context.Context, pkg *entity.SafariPackage) error {
	query := `
		INSERT INTO safari_packages (name, description, group_size_min, group_size_max, picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := pr.db.QueryRow(ctx, query,
		pkg.Name,
		pkg.Description,
		pkg.GroupSizeMin,
		pkg.GroupSizeMax,
		pkg.Picture,
	).Scan(&pkg.ID)

	if err != nil {
		pr.log.Error("Failed to create safari package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create safari package %s: %w", pkg.Name, err)
	}

	return nil
}

func (pr *packageRepository) FindByID(ctx context.Context, id int64) (*entity.SafariPackage, error) {
	query := `
		SELECT id, name, description, group_size_min, group_size_max, picture
		FROM safari_packages
		WHERE id = $1
	`

	var pkg entity.SafariPackage
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.GroupSizeMin,
		&pkg.GroupSizeMax,
		&pkg.Picture,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find safari package",
			zap.Error(err),
			zap.Int64("package_id", id),
		)
		return nil, fmt.Errorf("find safari package %d: %w", id, err)
	}

	return &pkg, nil
}

func (pr *packageRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.SafariPackage, error) {
	query := `
		SELECT id, name, description, group_size_min, group_size_max, picture
		FROM safari_packages
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := pr.db.Query(ctx, query, limit, offset)
	if err != nil {
		pr.log.Error("Failed to list safari packages",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all safari packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.SafariPackage
	for rows.Next() {
		var pkg entity.SafariPackage
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Description,
			&pkg.GroupSizeMin,
			&pkg.GroupSizeMax,
			&pkg.Picture,
		)
		if err != nil {
			pr.log.Error("Failed to scan safari package row", zap.Error(err))
			return nil, fmt.Errorf("scan safari package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate safari package rows: %w", err)
	}

	return packages, nil
}

func (pr *packageRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM safari_packages`

	var count int64
	if err := pr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		pr.log.Error("Failed to count safari packages", zap.Error(err))
		return 0, fmt.Errorf("count safari packages: %w", err)
	}

	return count, nil
}
