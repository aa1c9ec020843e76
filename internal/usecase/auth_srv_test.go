package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/dto/request"
	"safari-booking/pkg/utils"
)

// fakeHasher is a fast deterministic stand-in for the bcrypt hasher.
type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) {
	return "digest:" + raw, nil
}

func (fakeHasher) Verify(raw, digest string) (bool, error) {
	return digest == "digest:"+raw, nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.IsActive {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	f.users[id].IsActive = active
	return nil
}

type fakeTokenRepo struct {
	repository.TokenRepository
	tokens         map[string]*entity.AuthToken
	createErrsOnce []error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.AuthToken)}
}

func (f *fakeTokenRepo) Create(ctx context.Context, token *entity.AuthToken) error {
	if len(f.createErrsOnce) > 0 {
		err := f.createErrsOnce[0]
		f.createErrsOnce = f.createErrsOnce[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := f.tokens[token.Key]; ok {
		return repository.ErrDuplicateKey
	}
	for _, t := range f.tokens {
		if t.UserID == token.UserID {
			return repository.ErrDuplicateUserToken
		}
	}
	clone := *token
	f.tokens[token.Key] = &clone
	return nil
}

func (f *fakeTokenRepo) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	token, ok := f.tokens[key]
	if !ok {
		return nil, nil
	}
	clone := *token
	return &clone, nil
}

func (f *fakeTokenRepo) FindByUserID(ctx context.Context, userID int64) (*entity.AuthToken, error) {
	for _, t := range f.tokens {
		if t.UserID == userID {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenRepo) DeleteByKey(ctx context.Context, key string) error {
	if _, ok := f.tokens[key]; !ok {
		return repository.ErrTokenNotFound
	}
	delete(f.tokens, key)
	return nil
}

func newAuthTestService() (AuthService, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	repo := &repository.Repository{User: userRepo, Token: tokenRepo}
	config := &utils.Config{Auth: utils.AuthConfig{TokenLength: 40, TokenIssueRetries: 5}}
	return NewAuthService(repo, fakeHasher{}, config, zap.NewNop()), userRepo, tokenRepo
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Alice",
		Email:    email,
		Password: "p1secret",
		Phone:    "0712345678",
		Company:  "Safari Co",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := newAuthTestService()

	user, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)

	stored := userRepo.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "p1secret", stored.PasswordDigest, "stored secret must never equal raw input")
	assert.True(t, stored.IsActive)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("a@x.com"))
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Len(t, userRepo.users, 1, "user count must be unchanged")
}

func TestAuthService_RegisterRoleDefaultsToUser(t *testing.T) {
	svc, _, _ := newAuthTestService()

	req := registerReq("a@x.com")
	req.Role = ""
	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	svc, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	data, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	assert.Len(t, data.Token, 40)
	assert.Equal(t, entity.RoleUser, data.Role)
	assert.Equal(t, "a@x.com", data.User.Email)
}

func TestAuthService_LoginIdempotentToken(t *testing.T) {
	svc, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token, "re-login must return the existing token")
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthTestService()

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "nobody@x.com", Password: "p1secret"})
	require.ErrorIs(t, err, ErrUserMissingOrInactive)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	svc, userRepo, _ := newAuthTestService()

	user, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)
	require.NoError(t, userRepo.SetActive(context.Background(), user.ID, false))

	_, err = svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.ErrorIs(t, err, ErrUserMissingOrInactive,
		"inactive account must fail with the same message as a missing one")
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _, _ := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	data, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), data.Token))

	_, err = svc.ValidateToken(context.Background(), data.Token)
	require.ErrorIs(t, err, ErrInvalidToken, "validate after logout must fail")
}

func TestAuthService_LogoutUnknownToken(t *testing.T) {
	svc, _, _ := newAuthTestService()

	err := svc.Logout(context.Background(), "nosuchtokennosuchtokennosuchtokennosucht")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ValidateTokenInactiveUser(t *testing.T) {
	svc, userRepo, _ := newAuthTestService()

	user, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	data, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)

	require.NoError(t, userRepo.SetActive(context.Background(), user.ID, false))

	_, err = svc.ValidateToken(context.Background(), data.Token)
	require.ErrorIs(t, err, ErrUserInactive,
		"inactive owner must be distinguished from an unknown token")

	_, err = svc.ValidateToken(context.Background(), "nosuchtokennosuchtokennosuchtokennosucht")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_IssueRetriesOnKeyCollision(t *testing.T) {
	svc, _, tokenRepo := newAuthTestService()

	_, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	// First insert collides on the key, the retry succeeds.
	tokenRepo.createErrsOnce = []error{repository.ErrDuplicateKey}

	data, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	assert.Len(t, data.Token, 40)
}

func TestAuthService_IssueLostRaceFetchesWinner(t *testing.T) {
	svc, _, tokenRepo := newAuthTestService()

	user, err := svc.Register(context.Background(), registerReq("a@x.com"))
	require.NoError(t, err)

	// Simulate a concurrent login winning the insert race.
	winner := &entity.AuthToken{Key: "winnerwinnerwinnerwinnerwinnerwinnerwinn", UserID: user.ID}
	tokenRepo.createErrsOnce = []error{repository.ErrDuplicateUserToken}
	tokenRepo.tokens[winner.Key] = winner

	data, err := svc.Login(context.Background(), &request.LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.NoError(t, err)
	assert.Equal(t, winner.Key, data.Token, "lost race must resolve to the winner's token")
}
