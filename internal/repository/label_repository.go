package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

const labelColumns = "id, name, description, email, country, user_id, created_at, updated_at"

// LabelFilters narrows label listings. Name matches partially and
// case-insensitively; the rest match exactly.
type LabelFilters struct {
	Name    string
	Country string
	UserID  string
}

// LabelRepository handles label data access.
type LabelRepository struct {
	pool *pgxpool.Pool
}

// NewLabelRepository creates a new LabelRepository.
func NewLabelRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool}
}

// Create inserts a new label.
func (r *LabelRepository) Create(ctx context.Context, l *model.Label) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO labels (name, description, email, country, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		l.Name, l.Description, l.Email, l.Country, l.UserID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// GetByID retrieves a label by ID. Returns (nil, nil) when absent.
func (r *LabelRepository) GetByID(ctx context.Context, id string) (*model.Label, error) {
	l := &model.Label{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+labelColumns+" FROM labels WHERE id = $1", id,
	).Scan(&l.ID, &l.Name, &l.Description, &l.Email, &l.Country, &l.UserID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// ListPaginated retrieves labels matching the filters with a total count.
func (r *LabelRepository) ListPaginated(ctx context.Context, filters LabelFilters, limit, offset int) ([]model.Label, int, error) {
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
	if filters.Country != "" {
		addCond("country = %s", filters.Country)
	}
	if filters.UserID != "" {
		addCond("user_id = %s", filters.UserID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM labels"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM labels%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		labelColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Email, &l.Country, &l.UserID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, err
		}
		labels = append(labels, l)
	}
	return labels, total, rows.Err()
}

// Update modifies a label.
func (r *LabelRepository) Update(ctx context.Context, l *model.Label) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE labels SET name = $1, description = $2, email = $3, country = $4, updated_at = now()
		 WHERE id = $5`,
		l.Name, l.Description, l.Email, l.Country, l.ID)
	return err
}

// Delete removes a label. Returns false when no row matched.
func (r *LabelRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM labels WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
