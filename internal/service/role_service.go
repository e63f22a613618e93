package service

import (
	"context"
	"strings"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/response"
)

// RoleStore is the persistence surface for roles and grants.
type RoleStore interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	ListPaginated(ctx context.Context, filters model.RoleFilters, limit, offset int) ([]model.Role, int, error)
	GrantPermission(ctx context.Context, rp *model.RolePermission) error
	ListGrants(ctx context.Context, roleID string) ([]model.RolePermission, error)
	ListPermissionNames(ctx context.Context, roleID string) ([]string, error)
}

// PermissionStore is the persistence surface for the permission catalog.
type PermissionStore interface {
	GetByID(ctx context.Context, id string) (*model.Permission, error)
	List(ctx context.Context) ([]model.Permission, error)
}

// RoleService handles role and grant business logic.
type RoleService struct {
	roles       RoleStore
	permissions PermissionStore
}

// NewRoleService creates a new RoleService.
func NewRoleService(roles RoleStore, permissions PermissionStore) *RoleService {
	return &RoleService{roles: roles, permissions: permissions}
}

// CreateRole creates a role attributed to the acting user. A duplicate
// name is rejected by the unique index and surfaced as a conflict.
func (s *RoleService) CreateRole(ctx context.Context, req model.CreateRoleRequest, createdByID string) (*model.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.ValidationFields("Validation failed", "roles",
			map[string]string{"name": "name is required"})
	}

	role := &model.Role{
		Name:        name,
		Description: req.Description,
		CreatedByID: &createdByID,
	}

	if err := s.roles.Create(ctx, role); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Role already exists", "roles",
				map[string]string{"name": name})
		}
		return nil, apperr.Internal("roles", err)
	}

	return role, nil
}

// GetRoleByID retrieves a role, or a not-found error.
func (s *RoleService) GetRoleByID(ctx context.Context, id string) (*model.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found", "roles")
	}
	return role, nil
}

// ListRoles retrieves roles matching the filters, paginated.
func (s *RoleService) ListRoles(ctx context.Context, filters model.RoleFilters, page, perPage int) ([]model.Role, *response.Pagination, error) {
	page, perPage, limit, offset := normalizePage(page, perPage)

	roles, total, err := s.roles.ListPaginated(ctx, filters, limit, offset)
	if err != nil {
		return nil, nil, apperr.Internal("roles", err)
	}
	if roles == nil {
		roles = []model.Role{}
	}

	return roles, buildPagination(page, perPage, total), nil
}

// GrantPermission attaches a permission to a role, attributed to the acting
// user. Granting an already-granted pair is an explicit conflict, not a
// no-op: the grant log is an audit trail of events, not just state.
func (s *RoleService) GrantPermission(ctx context.Context, roleID, permissionID, createdByID string) (*model.RolePermission, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found", "roles")
	}

	permission, err := s.permissions.GetByID(ctx, permissionID)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if permission == nil {
		return nil, apperr.NotFound("Permission not found", "roles")
	}

	grant := &model.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
		CreatedByID:  &createdByID,
	}

	if err := s.roles.GrantPermission(ctx, grant); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Permission already granted to role", "roles",
				map[string]string{"role_id": roleID, "permission_id": permissionID})
		}
		return nil, apperr.Internal("roles", err)
	}

	return grant, nil
}

// ListRolePermissions retrieves the permission names granted to a role.
func (s *RoleService) ListRolePermissions(ctx context.Context, roleID string) ([]string, error) {
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found", "roles")
	}

	names, err := s.roles.ListPermissionNames(ctx, roleID)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ListPermissions retrieves the permission catalog.
func (s *RoleService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	permissions, err := s.permissions.List(ctx)
	if err != nil {
		return nil, apperr.Internal("roles", err)
	}
	if permissions == nil {
		permissions = []model.Permission{}
	}
	return permissions, nil
}
