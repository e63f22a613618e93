package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lensdistro/lens-backend/internal/model"
)

const lyricsColumns = "id, title, content, language, track_id, user_id, created_at, updated_at"

// LyricsRepository handles lyrics data access.
type LyricsRepository struct {
	pool *pgxpool.Pool
}

// NewLyricsRepository creates a new LyricsRepository.
func NewLyricsRepository(pool *pgxpool.Pool) *LyricsRepository {
	return &LyricsRepository{pool: pool}
}

// Create inserts new lyrics.
func (r *LyricsRepository) Create(ctx context.Context, l *model.Lyrics) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lyrics (title, content, language, track_id, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.Content, l.Language, l.TrackID, l.UserID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// GetByID retrieves lyrics by ID. Returns (nil, nil) when absent.
func (r *LyricsRepository) GetByID(ctx context.Context, id string) (*model.Lyrics, error) {
	l := &model.Lyrics{}
	err := r.pool.QueryRow(ctx,
		"SELECT "+lyricsColumns+" FROM lyrics WHERE id = $1", id,
	).Scan(&l.ID, &l.Title, &l.Content, &l.Language, &l.TrackID, &l.UserID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// ListPaginated retrieves lyrics with a total count, optionally filtered
// by track.
func (r *LyricsRepository) ListPaginated(ctx context.Context, trackID string, limit, offset int) ([]model.Lyrics, int, error) {
	where := ""
	args := []interface{}{}
	if trackID != "" {
		args = append(args, trackID)
		where = " WHERE track_id = $" + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM lyrics"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM lyrics%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		lyricsColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Lyrics
	for rows.Next() {
		var l model.Lyrics
		if err := rows.Scan(&l.ID, &l.Title, &l.Content, &l.Language, &l.TrackID, &l.UserID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}
