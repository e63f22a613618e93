package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

// userColumns is the default projection. The password hash is deliberately
// excluded; use GetByEmailWithPassword for credential checks.
const userColumns = "id, email, name, phone, status, role, avatar, created_at, updated_at"

// UserRepository handles user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Status, &u.Role, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves a user by email without the password hash.
// Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Status, &u.Role, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// GetByEmailWithPassword retrieves a user by email including the password
// hash, for login. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmailWithPassword(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, phone, password_hash, status, role, avatar, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.PasswordHash, &u.Status, &u.Role, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. The unique index on email raises on duplicate;
// callers detect it with IsUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, phone, password_hash, status, role, avatar)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.Phone, u.PasswordHash, u.Status, u.Role, u.Avatar,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// Delete removes a user. created_by_id references elsewhere are nulled by
// ON DELETE SET NULL, never cascaded. Returns false when no row matched.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
