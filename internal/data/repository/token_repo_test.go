package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
)

const testTokenKey = "aB3dE6gH9jK2mN5pQ8sT1vW4yZ7bC0eF3hJ6kL9n"

func newTokenRepoMock(t *testing.T) (TokenRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return NewTokenRepository(mock, zap.NewNop()), mock
}

func TestTokenRepository_Create(t *testing.T) {
	repo, mock := newTokenRepoMock(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO auth_tokens`).
		WithArgs(testTokenKey, int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	token := &entity.AuthToken{Key: testTokenKey, UserID: 7}
	err := repo.Create(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, now, token.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestTokenRepository_CreateUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{"key collision", "auth_tokens_pkey", ErrDuplicateKey},
		{"user already has token", "auth_tokens_user_id_key", ErrDuplicateUserToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTokenRepoMock(t)

			mock.ExpectQuery(`INSERT INTO auth_tokens`).
				WithArgs(testTokenKey, int64(7)).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			token := &entity.AuthToken{Key: testTokenKey, UserID: 7}
			err := repo.Create(context.Background(), token)
			require.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTokenRepository_FindByKey(t *testing.T) {
	repo, mock := newTokenRepoMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"key", "user_id", "created_at"}).
		AddRow(testTokenKey, int64(7), now)
	mock.ExpectQuery(`SELECT key, user_id, created_at`).
		WithArgs(testTokenKey).
		WillReturnRows(rows)

	token, err := repo.FindByKey(context.Background(), testTokenKey)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, int64(7), token.UserID)
	assert.Len(t, token.Key, 40)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_FindByKeyAbsent(t *testing.T) {
	repo, mock := newTokenRepoMock(t)

	mock.ExpectQuery(`SELECT key, user_id, created_at`).
		WithArgs(strings.Repeat("x", 40)).
		WillReturnRows(pgxmock.NewRows([]string{"key", "user_id", "created_at"}))

	token, err := repo.FindByKey(context.Background(), strings.Repeat("x", 40))
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteByKey(t *testing.T) {
	repo, mock := newTokenRepoMock(t)

	mock.ExpectExec(`DELETE FROM auth_tokens WHERE key = \$1`).
		WithArgs(testTokenKey).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteByKey(context.Background(), testTokenKey)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteByKeyAbsent(t *testing.T) {
	repo, mock := newTokenRepoMock(t)

	mock.ExpectExec(`DELETE FROM auth_tokens WHERE key = \$1`).
		WithArgs(testTokenKey).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteByKey(context.Background(), testTokenKey)
	require.ErrorIs(t, err, ErrTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
