package seed

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/model"
)

type fakePermissionStore struct {
	byName map[string]*model.Permission
	seq    int
}

func newFakePermissionStore() *fakePermissionStore {
	return &fakePermissionStore{byName: map[string]*model.Permission{}}
}

func (s *fakePermissionStore) GetByName(_ context.Context, name string) (*model.Permission, error) {
	return s.byName[name], nil
}

func (s *fakePermissionStore) Create(_ context.Context, p *model.Permission) error {
	s.seq++
	p.ID = "perm-" + strconv.Itoa(s.seq)
	s.byName[p.Name] = p
	return nil
}

func (s *fakePermissionStore) List(_ context.Context) ([]model.Permission, error) {
	var out []model.Permission
	for _, p := range s.byName {
		out = append(out, *p)
	}
	return out, nil
}

type fakeRoleStore struct {
	byName map[string]*model.Role
	grants map[string][]string // role id -> permission ids
	perms  *fakePermissionStore
}

func newFakeRoleStore(perms *fakePermissionStore) *fakeRoleStore {
	return &fakeRoleStore{
		byName: map[string]*model.Role{},
		grants: map[string][]string{},
		perms:  perms,
	}
}

func (s *fakeRoleStore) GetByName(_ context.Context, name string) (*model.Role, error) {
	return s.byName[name], nil
}

func (s *fakeRoleStore) Create(_ context.Context, role *model.Role) error {
	role.ID = "role-" + role.Name
	s.byName[role.Name] = role
	return nil
}

func (s *fakeRoleStore) GrantPermission(_ context.Context, rp *model.RolePermission) error {
	s.grants[rp.RoleID] = append(s.grants[rp.RoleID], rp.PermissionID)
	return nil
}

func (s *fakeRoleStore) ListPermissionNames(_ context.Context, roleID string) ([]string, error) {
	var names []string
	for _, permID := range s.grants[roleID] {
		for _, p := range s.perms.byName {
			if p.ID == permID {
				names = append(names, p.Name)
			}
		}
	}
	return names, nil
}

type fakeUserStore struct {
	byEmail map[string]*model.User
	creates int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*model.User{}}
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return s.byEmail[email], nil
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = "user-" + u.Email
	s.byEmail[u.Email] = u
	s.creates++
	return nil
}

func seedConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "info@lens.rw",
		AdminPassword: "bootstrap-secret",
		AdminName:     "Lens Super Admin",
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestSeedCreatesCatalogRoleAndAdmin(t *testing.T) {
	perms := newFakePermissionStore()
	roles := newFakeRoleStore(perms)
	users := newFakeUserStore()

	seeder := NewSeeder(seedConfig(), perms, roles, users)
	require.NoError(t, seeder.Run(context.Background()))

	assert.Len(t, perms.byName, len(model.PermissionCatalog))
	for _, name := range model.PermissionCatalog {
		assert.Contains(t, perms.byName, name)
	}

	role := roles.byName[model.SuperAdminRoleName]
	require.NotNil(t, role)
	assert.Len(t, roles.grants[role.ID], len(model.PermissionCatalog))

	admin := users.byEmail["info@lens.rw"]
	require.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, model.UserStatusActive, admin.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte("bootstrap-secret")))
}

func TestSeedIsIdempotent(t *testing.T) {
	perms := newFakePermissionStore()
	roles := newFakeRoleStore(perms)
	users := newFakeUserStore()

	seeder := NewSeeder(seedConfig(), perms, roles, users)
	require.NoError(t, seeder.Run(context.Background()))
	require.NoError(t, seeder.Run(context.Background()))

	assert.Len(t, perms.byName, len(model.PermissionCatalog))
	role := roles.byName[model.SuperAdminRoleName]
	require.NotNil(t, role)
	assert.Len(t, roles.grants[role.ID], len(model.PermissionCatalog))
	assert.Equal(t, 1, users.creates)
}

func TestSeedSkipsAdminWithoutPassword(t *testing.T) {
	perms := newFakePermissionStore()
	roles := newFakeRoleStore(perms)
	users := newFakeUserStore()

	cfg := seedConfig()
	cfg.AdminPassword = ""

	seeder := NewSeeder(cfg, perms, roles, users)
	require.NoError(t, seeder.Run(context.Background()))

	assert.Empty(t, users.byEmail)
	assert.Len(t, perms.byName, len(model.PermissionCatalog))
}

func TestSeedKeepsExtraPermissions(t *testing.T) {
	perms := newFakePermissionStore()
	require.NoError(t, perms.Create(context.Background(), &model.Permission{Name: "legacy:grandfathered"}))
	roles := newFakeRoleStore(perms)
	users := newFakeUserStore()

	seeder := NewSeeder(seedConfig(), perms, roles, users)
	require.NoError(t, seeder.Run(context.Background()))

	// Rows outside the catalog survive the sync, and the super admin role
	// picks them up too since it is granted everything present.
	assert.Contains(t, perms.byName, "legacy:grandfathered")
	role := roles.byName[model.SuperAdminRoleName]
	require.NotNil(t, role)
	assert.Len(t, roles.grants[role.ID], len(model.PermissionCatalog)+1)
}
