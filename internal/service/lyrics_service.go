package service

import (
	"context"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
)

// LyricsStore is the persistence surface for lyrics.
type LyricsStore interface {
	Create(ctx context.Context, l *model.Lyrics) error
	GetByID(ctx context.Context, id string) (*model.Lyrics, error)
	ListPaginated(ctx context.Context, trackID string, limit, offset int) ([]model.Lyrics, int, error)
}

// LyricsService handles lyrics business logic.
type LyricsService struct {
	lyrics LyricsStore
}

// NewLyricsService creates a new LyricsService.
func NewLyricsService(lyrics LyricsStore) *LyricsService {
	return &LyricsService{lyrics: lyrics}
}

// Create stores uploaded lyrics owned by the acting user.
func (s *LyricsService) Create(ctx context.Context, req model.CreateLyricsRequest, userID string) (*model.Lyrics, error) {
	lyrics := &model.Lyrics{
		Title:    req.Title,
		Content:  req.Content,
		Language: req.Language,
		TrackID:  req.TrackID,
		UserID:   userID,
	}

	if err := s.lyrics.Create(ctx, lyrics); err != nil {
		return nil, apperr.Internal("lyrics", err)
	}
	return lyrics, nil
}

// GetByID retrieves lyrics, or a not-found error.
func (s *LyricsService) GetByID(ctx context.Context, id string) (*model.Lyrics, error) {
	lyrics, err := s.lyrics.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("lyrics", err)
	}
	if lyrics == nil {
		return nil, apperr.NotFound("Lyrics not found", "lyrics")
	}
	return lyrics, nil
}

// List retrieves lyrics, paginated and optionally filtered by track.
func (s *LyricsService) List(ctx context.Context, trackID string, page, perPage int) ([]model.Lyrics, *response.Pagination, error) {
	page, perPage, limit, offset := normalizePage(page, perPage)

	items, total, err := s.lyrics.ListPaginated(ctx, trackID, limit, offset)
	if err != nil {
		return nil, nil, apperr.Internal("lyrics", err)
	}
	if items == nil {
		items = []model.Lyrics{}
	}
	return items, buildPagination(page, perPage, total), nil
}
