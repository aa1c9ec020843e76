package repository

import (
	"context"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	FindByKey(ctx context.Context, key string) (*entity.AuthToken, error)
	FindByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error)
	DeleteByKey(ctx context.Context, key string) error
}

type tokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenRepository(db database.PgxIface, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

// Create inserts a token row. Unique violations are mapped to distinct
// errors so the caller can tell a key collision (regenerate and retry)
// from a lost one-token-per-user race (fetch the existing token).
func (r *tokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query, token.Key, token.UserID).Scan(&token.CreatedAt)
	if err != nil {
		switch uniqueViolation(err) {
		case "auth_tokens_pkey":
			return ErrDuplicateKey
		case "auth_tokens_user_id_key":
			return ErrDuplicateUserToken
		}
		r.log.Error("Failed to create token",
			zap.Error(err),
			zap.Int64("user_id", token.UserID),
		)
		return fmt.Errorf("create token for user %d: %w", token.UserID, err)
	}

	return nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	query := `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE key = $1
	`

	var token entity.AuthToken
	err := r.db.QueryRow(ctx, query, key).Scan(
		&token.Key,
		&token.UserID,
		&token.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token by key", zap.Error(err))
		return nil, fmt.Errorf("find token by key: %w", err)
	}

	return &token, nil
}

func (r *tokenRepository) FindByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error) {
	query := `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE user_id = $1
	`

	var token entity.AuthToken
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&token.Key,
		&token.UserID,
		&token.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find token for user %d: %w", userID, err)
	}

	return &token, nil
}

// DeleteByKey removes the token row. Revocation is terminal.
func (r *tokenRepository) DeleteByKey(ctx context.Context, key string) error {
	query := `DELETE FROM auth_tokens WHERE key = $1`

	result, err := r.db.Exec(ctx, query, key)
	if err != nil {
		r.log.Error("Failed to delete token", zap.Error(err))
		return fmt.Errorf("delete token: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTokenNotFound
	}

	return nil
}
