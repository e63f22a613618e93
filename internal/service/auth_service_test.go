package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/model"
)

type stubUserStore struct {
	byEmail   map[string]*model.User
	createErr error
	created   []*model.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byEmail: map[string]*model.User{}}
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	copied.PasswordHash = ""
	return &copied, nil
}

func (s *stubUserStore) GetByEmailWithPassword(_ context.Context, email string) (*model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *stubUserStore) Create(_ context.Context, u *model.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = "user-" + u.Email
	s.byEmail[u.Email] = u
	s.created = append(s.created, u)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		SignupTokenTTL: 24 * time.Hour,
		LoginTokenTTL:  168 * time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(testConfig(), nil, store)

	user, token, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "amina@example.com",
		Name:     "Amina",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "amina@example.com", claims.Email)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, user.ID, claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestSignupIgnoresRequestedRole(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(testConfig(), nil, store)

	user, _, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "eve@example.com",
		Name:     "Eve",
		Password: "secret123",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestSignupExistingActiveConflict(t *testing.T) {
	store := newStubUserStore()
	store.byEmail["taken@example.com"] = &model.User{
		ID:     "user-1",
		Email:  "taken@example.com",
		Status: model.UserStatusActive,
	}
	svc := NewAuthService(testConfig(), nil, store)

	_, _, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "taken@example.com",
		Name:     "Dup",
		Password: "secret123",
	})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, map[string]string{"id": "user-1", "email": "taken@example.com"}, appErr.Data)
	assert.Empty(t, store.created, "no insert should happen on conflict")
}

func TestSignupExistingInactiveRejected(t *testing.T) {
	store := newStubUserStore()
	store.byEmail["dormant@example.com"] = &model.User{
		ID:     "user-2",
		Email:  "dormant@example.com",
		Status: model.UserStatusInactive,
	}
	svc := NewAuthService(testConfig(), nil, store)

	_, _, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "dormant@example.com",
		Name:     "Dormant",
		Password: "secret123",
	})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "User is not active", appErr.Message)
}

func TestSignupUniqueRaceReturnsConflict(t *testing.T) {
	store := newStubUserStore()
	store.createErr = &pgconn.PgError{Code: "23505"}
	svc := NewAuthService(testConfig(), nil, store)

	_, _, err := svc.Signup(context.Background(), model.SignupRequest{
		Email:    "race@example.com",
		Name:     "Race",
		Password: "secret123",
	})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginFailureMessagesIdentical(t *testing.T) {
	store := newStubUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)
	store.byEmail["known@example.com"] = &model.User{
		ID:           "user-3",
		Email:        "known@example.com",
		PasswordHash: string(hash),
		Status:       model.UserStatusActive,
	}
	svc := NewAuthService(testConfig(), nil, store)

	_, _, unknownErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, _, wrongErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "known@example.com",
		Password: "wrong-password",
	})

	unknownApp, ok := apperr.As(unknownErr)
	require.True(t, ok)
	wrongApp, ok := apperr.As(wrongErr)
	require.True(t, ok)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
	assert.Equal(t, unknownApp.Status, wrongApp.Status)
	assert.Equal(t, unknownApp.Code, wrongApp.Code)
}

func TestLoginStripsPasswordHash(t *testing.T) {
	store := newStubUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.byEmail["amina@example.com"] = &model.User{
		ID:           "user-4",
		Email:        "amina@example.com",
		PasswordHash: string(hash),
		Status:       model.UserStatusActive,
		Role:         model.RoleUser,
	}
	svc := NewAuthService(testConfig(), nil, store)

	user, token, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "amina@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-4", claims.UserID)
}

func TestLoginInactiveAccountRejected(t *testing.T) {
	store := newStubUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.byEmail["dormant@example.com"] = &model.User{
		ID:           "user-5",
		Email:        "dormant@example.com",
		PasswordHash: string(hash),
		Status:       model.UserStatusInactive,
	}
	svc := NewAuthService(testConfig(), nil, store)

	_, _, err = svc.Login(context.Background(), model.LoginRequest{
		Email:    "dormant@example.com",
		Password: "secret123",
	})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "User is not active", appErr.Message)
}

func TestVerifyTokenUniformFailures(t *testing.T) {
	svc := NewAuthService(testConfig(), nil, newStubUserStore())
	user := &model.User{ID: "user-6", Email: "x@example.com", Role: model.RoleUser}

	otherCfg := testConfig()
	otherCfg.JWTSecret = "another-secret"
	otherSvc := NewAuthService(otherCfg, nil, newStubUserStore())
	foreign, err := otherSvc.IssueToken(user, time.Hour)
	require.NoError(t, err)

	expired, err := svc.IssueToken(user, -time.Minute)
	require.NoError(t, err)

	for name, tokenStr := range map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong secret": foreign,
		"expired":      expired,
	} {
		_, err := svc.VerifyToken(context.Background(), tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := NewAuthService(testConfig(), nil, newStubUserStore())
	user := &model.User{ID: "user-7", Email: "x@example.com", Role: model.RoleUser}

	token, err := svc.IssueToken(user, time.Second)
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokedTokenRejected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	svc := NewAuthService(testConfig(), rdb, newStubUserStore())
	user := &model.User{ID: "user-8", Email: "x@example.com", Role: model.RoleUser}

	token, err := svc.IssueToken(user, time.Hour)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), claims))

	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeWithoutRedisIsNoop(t *testing.T) {
	svc := NewAuthService(testConfig(), nil, newStubUserStore())
	user := &model.User{ID: "user-9", Email: "x@example.com", Role: model.RoleUser}

	token, err := svc.IssueToken(user, time.Hour)
	require.NoError(t, err)
	claims, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), claims))

	// Revocation is disabled; the token stays valid until expiry.
	_, err = svc.VerifyToken(context.Background(), token)
	assert.NoError(t, err)
}
