package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

// PermissionRepository handles permission catalog data access.
type PermissionRepository struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository creates a new PermissionRepository.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{pool: pool}
}

// GetByID retrieves a permission by ID. Returns (nil, nil) when absent.
func (r *PermissionRepository) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	p := &model.Permission{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, description, created_at FROM permissions WHERE id = $1", id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// GetByName retrieves a permission by its unique name. Returns (nil, nil)
// when absent.
func (r *PermissionRepository) GetByName(ctx context.Context, name string) (*model.Permission, error) {
	p := &model.Permission{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, description, created_at FROM permissions WHERE name = $1", name,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new permission. The unique index on name raises on
// duplicate; seeding treats that as already-present.
func (r *PermissionRepository) Create(ctx context.Context, p *model.Permission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO permissions (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.Name, p.Description,
	).Scan(&p.ID, &p.CreatedAt)
}

// List retrieves the full permission catalog ordered by name.
func (r *PermissionRepository) List(ctx context.Context) ([]model.Permission, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, description, created_at FROM permissions ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []model.Permission
	for rows.Next() {
		var p model.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}
	return permissions, rows.Err()
}
