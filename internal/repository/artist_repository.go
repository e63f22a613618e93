package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

const artistColumns = "id, name, status, user_id, label_id, created_at, updated_at"

// ArtistFilters narrows artist listings. Empty fields are ignored.
type ArtistFilters struct {
	UserID  string
	Status  string
	LabelID string
}

// ArtistRepository handles artist data access.
type ArtistRepository struct {
	pool *pgxpool.Pool
}

// NewArtistRepository creates a new ArtistRepository.
func NewArtistRepository(pool *pgxpool.Pool) *ArtistRepository {
	return &ArtistRepository{pool: pool}
}

// Create inserts a new artist.
func (r *ArtistRepository) Create(ctx context.Context, a *model.Artist) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO artists (name, status, user_id, label_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Status, a.UserID, a.LabelID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an artist by ID. Returns (nil, nil) when absent.
func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	a := &model.Artist{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE id = $1", id,
	).Scan(&a.ID, &a.Name, &a.Status, &a.UserID, &a.LabelID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves artists matching the filters with a total count.
func (r *ArtistRepository) ListPaginated(ctx context.Context, filters ArtistFilters, limit, offset int) ([]model.Artist, int, error) {
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
	if filters.Status != "" {
		addCond("status", filters.Status)
	}
	if filters.LabelID != "" {
		addCond("label_id", filters.LabelID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM artists"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM artists%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		artistColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var artists []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.Status, &a.UserID, &a.LabelID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		artists = append(artists, a)
	}
	return artists, total, rows.Err()
}

// Update modifies an artist's name and status.
func (r *ArtistRepository) Update(ctx context.Context, a *model.Artist) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE artists SET name = $1, status = $2, updated_at = now() WHERE id = $3",
		a.Name, a.Status, a.ID)
	return err
}

// Delete removes an artist. Returns false when no row matched.
func (r *ArtistRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM artists WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
