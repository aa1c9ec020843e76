package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
)

func newUserRepoMock(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return NewUserRepository(mock, zap.NewNop()), mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "a@x.com", "$2a$12$digest", "0712345678", "Safari Co", entity.RoleUser, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "date_created"}).AddRow(int64(1), now))

	user := &entity.User{
		Name:           "Alice",
		Email:          "a@x.com",
		PasswordDigest: "$2a$12$digest",
		Phone:          "0712345678",
		Company:        "Safari Co",
		Role:           entity.RoleUser,
		IsActive:       true,
	}

	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, now, user.DateCreated)
	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Bob", "a@x.com", "$2a$12$digest", "", "", entity.RoleUser, true).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	user := &entity.User{
		Name:           "Bob",
		Email:          "a@x.com",
		PasswordDigest: "$2a$12$digest",
		Role:           entity.RoleUser,
		IsActive:       true,
	}

	err := repo.Create(context.Background(), user)
	require.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindActiveByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantUser  bool
		wantErr   bool
	}{
		{
			name: "active user found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{
					"id", "name", "email", "password", "phone", "company",
					"role", "is_active", "date_created",
				}).AddRow(int64(7), "Alice", "a@x.com", "$2a$12$digest",
					"0712345678", "Safari Co", entity.RoleUser, true, now)
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND is_active = TRUE`).
					WithArgs("a@x.com").
					WillReturnRows(rows)
			},
			wantUser: true,
		},
		{
			name: "no matching active user",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND is_active = TRUE`).
					WithArgs("a@x.com").
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "name", "email", "password", "phone", "company",
						"role", "is_active", "date_created",
					}))
			},
			wantUser: false,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 AND is_active = TRUE`).
					WithArgs("a@x.com").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newUserRepoMock(t)
			tt.setupMock(mock)

			user, err := repo.FindActiveByEmail(context.Background(), "a@x.com")

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				if tt.wantUser {
					require.NotNil(t, user)
					assert.Equal(t, int64(7), user.ID)
					assert.True(t, user.IsActive)
				} else {
					assert.Nil(t, user)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepository_SetActive(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`UPDATE users SET is_active = \$2 WHERE id = \$1`).
		WithArgs(int64(7), false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetActive(context.Background(), 7, false)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetActiveNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`UPDATE users SET is_active = \$2 WHERE id = \$1`).
		WithArgs(int64(99), true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetActive(context.Background(), 99, true)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
