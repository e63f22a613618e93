package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

const roleColumns = "id, name, description, created_by_id, created_at, updated_at"

// RoleRepository handles role and role-permission data access.
type RoleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// Create inserts a new role. The unique index on name raises on duplicate.
func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO roles (name, description, created_by_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		role.Name, role.Description, role.CreatedByID,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
}

// GetByID retrieves a role by ID. Returns (nil, nil) when absent.
func (r *RoleRepository) GetByID(ctx context.Context, id string) (*model.Role, error) {
	role := &model.Role{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+roleColumns+" FROM roles WHERE id = $1", id,
	).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedByID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

// GetByName retrieves a role by its unique name. Returns (nil, nil) when absent.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	role := &model.Role{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+roleColumns+" FROM roles WHERE name = $1", name,
	).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedByID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

// ListPaginated retrieves roles matching the filters with a total count.
// Name and description match partially, case-insensitively; created_by_id
// matches exactly.
func (r *RoleRepository) ListPaginated(ctx context.Context, filters model.RoleFilters, limit, offset int) ([]model.Role, int, error) {
	where := ""
	args := []interface{}{}
	addCond := func(cond string, val interface{}) {
		args = append(args, val)
		placeholder := "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, placeholder)
	}

	if filters.Name != "" {
		addCond("name ILIKE '%%' || %s || '%%'", filters.Name)
	}
	if filters.Description != "" {
		addCond("description ILIKE '%%' || %s || '%%'", filters.Description)
	}
	if filters.CreatedByID != "" {
		addCond("created_by_id = %s", filters.CreatedByID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM roles"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM roles%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		roleColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedByID, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

// GrantPermission inserts a role-permission grant. The unique index on
// (role_id, permission_id) raises on a duplicate grant.
func (r *RoleRepository) GrantPermission(ctx context.Context, rp *model.RolePermission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO role_permissions (role_id, permission_id, created_by_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		rp.RoleID, rp.PermissionID, rp.CreatedByID,
	).Scan(&rp.ID, &rp.CreatedAt)
}

// ListGrants retrieves the grants attached to a role.
func (r *RoleRepository) ListGrants(ctx context.Context, roleID string) ([]model.RolePermission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, role_id, permission_id, created_by_id, created_at
		 FROM role_permissions WHERE role_id = $1 ORDER BY created_at`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []model.RolePermission
	for rows.Next() {
		var rp model.RolePermission
		if err := rows.Scan(&rp.ID, &rp.RoleID, &rp.PermissionID, &rp.CreatedByID, &rp.CreatedAt); err != nil {
			return nil, err
		}
		grants = append(grants, rp)
	}
	return grants, rows.Err()
}

// ListPermissionNames retrieves the permission names granted to a role.
func (r *RoleRepository) ListPermissionNames(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.name
		 FROM permissions p
		 JOIN role_permissions rp ON p.id = rp.permission_id
		 WHERE rp.role_id = $1
		 ORDER BY p.name`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
