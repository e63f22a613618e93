package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

const releaseColumns = "id, title, upc, release_date, version, production_year, catalog_number, label_id, user_id, created_at, updated_at"

// ReleaseFilters narrows release listings. Empty fields are ignored.
type ReleaseFilters struct {
	UserID  string
	LabelID string
}

// ReleaseRepository handles release data access.
type ReleaseRepository struct {
	pool *pgxpool.Pool
}

// NewReleaseRepository creates a new ReleaseRepository.
func NewReleaseRepository(pool *pgxpool.Pool) *ReleaseRepository {
	return &ReleaseRepository{pool: pool}
}

// Create inserts a new release.
func (r *ReleaseRepository) Create(ctx context.Context, rel *model.Release) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO releases (title, upc, release_date, version, production_year, catalog_number, label_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		rel.Title, rel.UPC, rel.ReleaseDate, rel.Version, rel.ProductionYear, rel.CatalogNumber, rel.LabelID, rel.UserID,
	).Scan(&rel.ID, &rel.CreatedAt, &rel.UpdatedAt)
}

// GetByID retrieves a release by ID. Returns (nil, nil) when absent.
func (r *ReleaseRepository) GetByID(ctx context.Context, id string) (*model.Release, error) {
	rel := &model.Release{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+releaseColumns+" FROM releases WHERE id = $1", id,
	).Scan(&rel.ID, &rel.Title, &rel.UPC, &rel.ReleaseDate, &rel.Version, &rel.ProductionYear,
		&rel.CatalogNumber, &rel.LabelID, &rel.UserID, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return rel, nil
}

// FindDuplicate looks for an existing release with the same title, owner,
// version, production year, label and release date. Returns (nil, nil)
// when no duplicate exists.
func (r *ReleaseRepository) FindDuplicate(ctx context.Context, title, userID, version string, productionYear int, labelID *string, releaseDate time.Time) (*model.Release, error) {
	rel := &model.Release{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+releaseColumns+` FROM releases
		 WHERE title = $1 AND user_id = $2 AND version = $3 AND production_year = $4
		   AND label_id IS NOT DISTINCT FROM $5 AND release_date = $6`,
		title, userID, version, productionYear, labelID, releaseDate,
	).Scan(&rel.ID, &rel.Title, &rel.UPC, &rel.ReleaseDate, &rel.Version, &rel.ProductionYear,
		&rel.CatalogNumber, &rel.LabelID, &rel.UserID, &rel.CreatedAt, &rel.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return rel, nil
}

// ListPaginated retrieves releases matching the filters with a total count.
func (r *ReleaseRepository) ListPaginated(ctx context.Context, filters ReleaseFilters, limit, offset int) ([]model.Release, int, error) {
	where := ""
	args := []interface{}{}
	addCond := func(column string, val interface{}) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += column + " = $" + strconv.Itoa(len(args))
	}

	if filters.UserID != "" {
		addCond("user_id", filters.UserID)
	}
	if filters.LabelID != "" {
		addCond("label_id", filters.LabelID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM releases"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM releases%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		releaseColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var releases []model.Release
	for rows.Next() {
		var rel model.Release
		if err := rows.Scan(&rel.ID, &rel.Title, &rel.UPC, &rel.ReleaseDate, &rel.Version, &rel.ProductionYear,
			&rel.CatalogNumber, &rel.LabelID, &rel.UserID, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
			return nil, 0, err
		}
		releases = append(releases, rel)
	}
	return releases, total, rows.Err()
}
