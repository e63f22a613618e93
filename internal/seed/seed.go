package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
)

// PermissionStore is the permission persistence surface the seeder needs.
type PermissionStore interface {
	GetByName(ctx context.Context, name string) (*model.Permission, error)
	Create(ctx context.Context, p *model.Permission) error
	List(ctx context.Context) ([]model.Permission, error)
}

// RoleStore is the role persistence surface the seeder needs.
type RoleStore interface {
	GetByName(ctx context.Context, name string) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
	GrantPermission(ctx context.Context, rp *model.RolePermission) error
	ListPermissionNames(ctx context.Context, roleID string) ([]string, error)
}

// UserStore is the user persistence surface the seeder needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// Seeder synchronizes the permission catalog and bootstraps the
// super-admin role and user. Every step is idempotent so it can run on
// every boot and concurrently across replicas; unique violations from a
// racing replica are treated as success.
type Seeder struct {
	cfg         *config.Config
	permissions PermissionStore
	roles       RoleStore
	users       UserStore
}

// NewSeeder creates a Seeder.
func NewSeeder(cfg *config.Config, permissions PermissionStore, roles RoleStore, users UserStore) *Seeder {
	return &Seeder{cfg: cfg, permissions: permissions, roles: roles, users: users}
}

// Run executes the full bootstrap sequence.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.syncPermissions(ctx); err != nil {
		return fmt.Errorf("sync permissions: %w", err)
	}

	role, err := s.ensureSuperAdminRole(ctx)
	if err != nil {
		return fmt.Errorf("ensure super admin role: %w", err)
	}

	if err := s.grantAllPermissions(ctx, role); err != nil {
		return fmt.Errorf("grant permissions: %w", err)
	}

	if err := s.ensureAdminUser(ctx); err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}

	return nil
}

// syncPermissions inserts every catalog permission that is not already
// present. Rows outside the catalog are left alone.
func (s *Seeder) syncPermissions(ctx context.Context) error {
	for _, name := range model.PermissionCatalog {
		existing, err := s.permissions.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if err := s.permissions.Create(ctx, &model.Permission{Name: name}); err != nil {
			if repository.IsUniqueViolation(err) {
				continue
			}
			return err
		}
		log.Info().Str("permission", name).Msg("Seeded permission")
	}
	return nil
}

func (s *Seeder) ensureSuperAdminRole(ctx context.Context) (*model.Role, error) {
	role, err := s.roles.GetByName(ctx, model.SuperAdminRoleName)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	desc := "Built-in role holding every catalog permission"
	role = &model.Role{Name: model.SuperAdminRoleName, Description: &desc}
	if err := s.roles.Create(ctx, role); err != nil {
		if repository.IsUniqueViolation(err) {
			return s.roles.GetByName(ctx, model.SuperAdminRoleName)
		}
		return nil, err
	}
	log.Info().Str("role", role.Name).Msg("Seeded role")
	return role, nil
}

// grantAllPermissions links every catalog permission to the role,
// skipping grants that already exist.
func (s *Seeder) grantAllPermissions(ctx context.Context, role *model.Role) error {
	granted, err := s.roles.ListPermissionNames(ctx, role.ID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(granted))
	for _, name := range granted {
		have[name] = true
	}

	all, err := s.permissions.List(ctx)
	if err != nil {
		return err
	}

	for _, perm := range all {
		if have[perm.Name] {
			continue
		}
		rp := &model.RolePermission{RoleID: role.ID, PermissionID: perm.ID}
		if err := s.roles.GrantPermission(ctx, rp); err != nil {
			if repository.IsUniqueViolation(err) {
				continue
			}
			return err
		}
	}
	return nil
}

// ensureAdminUser creates the bootstrap administrator from config.
// Skipped entirely when no admin password is configured, so production
// deployments can opt out.
func (s *Seeder) ensureAdminUser(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set — skipping admin user bootstrap")
		return nil
	}

	existing, err := s.users.GetByEmail(ctx, s.cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        s.cfg.AdminEmail,
		Name:         s.cfg.AdminName,
		PasswordHash: string(hash),
		Status:       model.UserStatusActive,
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	log.Info().Str("email", user.Email).Msg("Seeded admin user")
	return nil
}
