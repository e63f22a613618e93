package service

import (
	"context"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/response"
)

// ArtistStore is the persistence surface for artists.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	ListPaginated(ctx context.Context, filters repository.ArtistFilters, limit, offset int) ([]model.Artist, int, error)
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ArtistService handles artist business logic.
type ArtistService struct {
	artists ArtistStore
}

// NewArtistService creates a new ArtistService.
func NewArtistService(artists ArtistStore) *ArtistService {
	return &ArtistService{artists: artists}
}

// Create registers an artist owned by the acting user.
func (s *ArtistService) Create(ctx context.Context, req model.CreateArtistRequest, userID string) (*model.Artist, error) {
	status := req.Status
	if status == "" {
		status = model.ArtistStatusActive
	}

	artist := &model.Artist{
		Name:    req.Name,
		Status:  status,
		UserID:  userID,
		LabelID: req.LabelID,
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, apperr.Internal("artists", err)
	}
	return artist, nil
}

// GetByID retrieves an artist, or a not-found error.
func (s *ArtistService) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("artists", err)
	}
	if artist == nil {
		return nil, apperr.NotFound("Artist not found", "artists")
	}
	return artist, nil
}

// List retrieves artists matching the filters, paginated.
func (s *ArtistService) List(ctx context.Context, filters repository.ArtistFilters, page, perPage int) ([]model.Artist, *response.Pagination, error) {
	page, perPage, limit, offset := normalizePage(page, perPage)

	artists, total, err := s.artists.ListPaginated(ctx, filters, limit, offset)
	if err != nil {
		return nil, nil, apperr.Internal("artists", err)
	}
	if artists == nil {
		artists = []model.Artist{}
	}
	return artists, buildPagination(page, perPage, total), nil
}

// Update modifies an artist's name and status.
func (s *ArtistService) Update(ctx context.Context, artist *model.Artist, req model.UpdateArtistRequest) (*model.Artist, error) {
	artist.Name = req.Name
	if req.Status != "" {
		artist.Status = req.Status
	}

	if err := s.artists.Update(ctx, artist); err != nil {
		return nil, apperr.Internal("artists", err)
	}
	return artist, nil
}

// Delete removes an artist.
func (s *ArtistService) Delete(ctx context.Context, id string) error {
	found, err := s.artists.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("artists", err)
	}
	if !found {
		return apperr.NotFound("Artist not found", "artists")
	}
	return nil
}
