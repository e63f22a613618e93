package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
)

// ErrInvalidToken is returned for every verification failure — structural
// corruption, signature mismatch, expiry, or a revoked token. The caller
// must not be able to distinguish why verification failed.
var ErrInvalidToken = errors.New("invalid token")

// msgBadCredentials is shared by the unknown-email and wrong-password
// branches of login so neither can be told apart.
const msgBadCredentials = "Email or password is incorrect"

const revokedKeyPrefix = "revoked_token:"

// Claims extends JWT registered claims with the acting identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserStore is the persistence surface the auth flows need.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// AuthService issues and verifies session tokens and runs the signup and
// login flows. Verification is CPU-only; the optional Redis denylist is the
// single I/O touch point, and only when a client is configured.
type AuthService struct {
	cfg   *config.Config
	rdb   *redis.Client
	users UserStore
}

// NewAuthService creates a new AuthService. rdb may be nil, which disables
// token revocation.
func NewAuthService(cfg *config.Config, rdb *redis.Client, users UserStore) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb, users: users}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// IssueToken creates a signed token carrying the user's identity with the
// given lifetime.
func (s *AuthService) IssueToken(user *model.User, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken parses and validates a token, returning its claims. Every
// failure mode yields ErrInvalidToken.
func (s *AuthService) VerifyToken(ctx context.Context, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.rdb != nil && claims.ID != "" {
		revoked, err := s.rdb.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
		if err != nil {
			return nil, ErrInvalidToken
		}
		if revoked > 0 {
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

// RevokeToken denylists the token's JTI until its natural expiry. A no-op
// when no Redis client is configured.
func (s *AuthService) RevokeToken(ctx context.Context, claims *Claims) error {
	if s.rdb == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err()
}

// Signup creates an account and issues a short-lived token. An existing
// inactive account is a validation failure; an existing active account is a
// conflict carrying the account's id and email so the client can
// disambiguate without any credential material.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, string, error) {
	email := strings.TrimSpace(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("auth", err)
	}
	if existing != nil {
		if existing.Status != model.UserStatusActive {
			return nil, "", apperr.Validation("User is not active", "auth")
		}
		return nil, "", apperr.Conflict("User already exists", "auth",
			map[string]string{"id": existing.ID, "email": existing.Email})
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperr.Internal("auth", err)
	}

	// The requested role label is not honored at signup: accounts start
	// as plain users and are promoted through role management.
	user := &model.User{
		Email:        email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hash,
		Status:       model.UserStatusActive,
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			// Lost a concurrent signup race on the email unique index.
			return nil, "", apperr.Conflict("User already exists", "auth",
				map[string]string{"email": email})
		}
		return nil, "", apperr.Internal("auth", err)
	}

	token, err := s.IssueToken(user, s.cfg.SignupTokenTTL)
	if err != nil {
		// The account exists; losing it over a signing failure would be
		// worse than returning it without a token. The client logs in to
		// obtain one.
		log.Warn().Str("module", "auth").Err(err).Msg("token issuance failed after signup")
		return user, "", nil
	}

	return user, token, nil
}

// Login checks credentials and issues a long-lived token. The failure
// message is byte-identical for unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, "", apperr.Validation("Email and password are required", "auth")
	}

	user, err := s.users.GetByEmailWithPassword(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, "", apperr.Internal("auth", err)
	}
	if user == nil {
		return nil, "", apperr.Validation(msgBadCredentials, "auth")
	}

	if err := s.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, "", apperr.Validation(msgBadCredentials, "auth")
	}

	// Status gates authentication. Checked after the password so the
	// message only confirms what a valid credential holder already knows.
	if user.Status != model.UserStatusActive {
		return nil, "", apperr.Validation("User is not active", "auth")
	}

	token, err := s.IssueToken(user, s.cfg.LoginTokenTTL)
	if err != nil {
		return nil, "", apperr.Internal("auth", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}
