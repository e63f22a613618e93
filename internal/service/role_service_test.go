package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
)

type stubRoleStore struct {
	byID       map[string]*model.Role
	createErr  error
	grantErr   error
	grants     []*model.RolePermission
	grantNames map[string][]string
}

func newStubRoleStore() *stubRoleStore {
	return &stubRoleStore{
		byID:       map[string]*model.Role{},
		grantNames: map[string][]string{},
	}
}

func (s *stubRoleStore) Create(_ context.Context, role *model.Role) error {
	if s.createErr != nil {
		return s.createErr
	}
	role.ID = "role-" + role.Name
	s.byID[role.ID] = role
	return nil
}

func (s *stubRoleStore) GetByID(_ context.Context, id string) (*model.Role, error) {
	return s.byID[id], nil
}

func (s *stubRoleStore) ListPaginated(_ context.Context, _ model.RoleFilters, limit, offset int) ([]model.Role, int, error) {
	var roles []model.Role
	for _, r := range s.byID {
		roles = append(roles, *r)
	}
	return roles, len(roles), nil
}

func (s *stubRoleStore) GrantPermission(_ context.Context, rp *model.RolePermission) error {
	if s.grantErr != nil {
		return s.grantErr
	}
	s.grants = append(s.grants, rp)
	return nil
}

func (s *stubRoleStore) ListGrants(_ context.Context, roleID string) ([]model.RolePermission, error) {
	var out []model.RolePermission
	for _, g := range s.grants {
		if g.RoleID == roleID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (s *stubRoleStore) ListPermissionNames(_ context.Context, roleID string) ([]string, error) {
	return s.grantNames[roleID], nil
}

type stubPermissionStore struct {
	byID map[string]*model.Permission
}

func newStubPermissionStore() *stubPermissionStore {
	return &stubPermissionStore{byID: map[string]*model.Permission{}}
}

func (s *stubPermissionStore) GetByID(_ context.Context, id string) (*model.Permission, error) {
	return s.byID[id], nil
}

func (s *stubPermissionStore) List(_ context.Context) ([]model.Permission, error) {
	var out []model.Permission
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, nil
}

func TestCreateRoleAttributesCreator(t *testing.T) {
	svc := NewRoleService(newStubRoleStore(), newStubPermissionStore())

	role, err := svc.CreateRole(context.Background(), model.CreateRoleRequest{Name: "CURATOR"}, "admin-1")
	require.NoError(t, err)
	require.NotNil(t, role.CreatedByID)
	assert.Equal(t, "admin-1", *role.CreatedByID)
}

func TestCreateRoleBlankNameRejected(t *testing.T) {
	svc := NewRoleService(newStubRoleStore(), newStubPermissionStore())

	_, err := svc.CreateRole(context.Background(), model.CreateRoleRequest{Name: "   "}, "admin-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Fields, "name")
}

func TestCreateRoleDuplicateNameConflict(t *testing.T) {
	roles := newStubRoleStore()
	roles.createErr = &pgconn.PgError{Code: "23505"}
	svc := NewRoleService(roles, newStubPermissionStore())

	_, err := svc.CreateRole(context.Background(), model.CreateRoleRequest{Name: "CURATOR"}, "admin-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
}

func TestGrantPermissionUnknownRole(t *testing.T) {
	svc := NewRoleService(newStubRoleStore(), newStubPermissionStore())

	_, err := svc.GrantPermission(context.Background(), "no-such-role", "perm-1", "admin-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Role not found", appErr.Message)
}

func TestGrantPermissionUnknownPermission(t *testing.T) {
	roles := newStubRoleStore()
	roles.byID["role-1"] = &model.Role{ID: "role-1", Name: "CURATOR"}
	svc := NewRoleService(roles, newStubPermissionStore())

	_, err := svc.GrantPermission(context.Background(), "role-1", "no-such-perm", "admin-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Permission not found", appErr.Message)
}

func TestGrantPermissionDuplicateConflict(t *testing.T) {
	roles := newStubRoleStore()
	roles.byID["role-1"] = &model.Role{ID: "role-1", Name: "CURATOR"}
	roles.grantErr = &pgconn.PgError{Code: "23505"}
	perms := newStubPermissionStore()
	perms.byID["perm-1"] = &model.Permission{ID: "perm-1", Name: model.PermissionArtistsRead}
	svc := NewRoleService(roles, perms)

	_, err := svc.GrantPermission(context.Background(), "role-1", "perm-1", "admin-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Permission already granted to role", appErr.Message)
}

func TestGrantPermissionSuccess(t *testing.T) {
	roles := newStubRoleStore()
	roles.byID["role-1"] = &model.Role{ID: "role-1", Name: "CURATOR"}
	perms := newStubPermissionStore()
	perms.byID["perm-1"] = &model.Permission{ID: "perm-1", Name: model.PermissionArtistsRead}
	svc := NewRoleService(roles, perms)

	grant, err := svc.GrantPermission(context.Background(), "role-1", "perm-1", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "role-1", grant.RoleID)
	assert.Equal(t, "perm-1", grant.PermissionID)
	require.NotNil(t, grant.CreatedByID)
	assert.Equal(t, "admin-1", *grant.CreatedByID)
	assert.Len(t, roles.grants, 1)
}

func TestListRolePermissionsUnknownRole(t *testing.T) {
	svc := NewRoleService(newStubRoleStore(), newStubPermissionStore())

	_, err := svc.ListRolePermissions(context.Background(), "missing")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestListRolePermissionsEmptyIsNotNil(t *testing.T) {
	roles := newStubRoleStore()
	roles.byID["role-1"] = &model.Role{ID: "role-1", Name: "CURATOR"}
	svc := NewRoleService(roles, newStubPermissionStore())

	names, err := svc.ListRolePermissions(context.Background(), "role-1")
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
