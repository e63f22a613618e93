package service

import (
	"context"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
)

// UserAdminStore is the persistence surface for user management.
type UserAdminStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UserService handles user management business logic. Authorization
// (admin-or-self) is decided at the handler boundary against the resolved
// identity; this service only touches data.
type UserService struct {
	users UserAdminStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserAdminStore) *UserService {
	return &UserService{users: users}
}

// GetByID retrieves a user, or a not-found error.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("users", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found", "users")
	}
	return user, nil
}

// Delete hard-deletes a user. Roles and grants the user created survive;
// their created_by_id attribution is nulled by the schema.
func (s *UserService) Delete(ctx context.Context, id string) error {
	found, err := s.users.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("users", err)
	}
	if !found {
		return apperr.NotFound("User not found", "users")
	}
	return nil
}
