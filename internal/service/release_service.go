package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/response"
)

// defaultReleaseVersion is assumed when the client omits a version.
const defaultReleaseVersion = "original"

// ReleaseStore is the persistence surface for releases.
type ReleaseStore interface {
	Create(ctx context.Context, rel *model.Release) error
	GetByID(ctx context.Context, id string) (*model.Release, error)
	FindDuplicate(ctx context.Context, title, userID, version string, productionYear int, labelID *string, releaseDate time.Time) (*model.Release, error)
	ListPaginated(ctx context.Context, filters repository.ReleaseFilters, limit, offset int) ([]model.Release, int, error)
}

// ReleaseService handles release business logic.
type ReleaseService struct {
	releases ReleaseStore
}

// NewReleaseService creates a new ReleaseService.
func NewReleaseService(releases ReleaseStore) *ReleaseService {
	return &ReleaseService{releases: releases}
}

// Create registers a release owned by the acting user. An identical
// release (same title, owner, version, year, label and date) is a conflict
// carrying the existing release's id.
func (s *ReleaseService) Create(ctx context.Context, req model.CreateReleaseRequest, userID string) (*model.Release, error) {
	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, apperr.ValidationFields("Validation failed", "releases",
			map[string]string{"release_date": "must be a date in YYYY-MM-DD format"})
	}

	version := req.Version
	if version == "" {
		version = defaultReleaseVersion
	}

	existing, err := s.releases.FindDuplicate(ctx, req.Title, userID, version, req.ProductionYear, req.LabelID, releaseDate)
	if err != nil {
		return nil, apperr.Internal("releases", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Release already exists", "releases",
			map[string]string{"id": existing.ID})
	}

	release := &model.Release{
		Title:          req.Title,
		UPC:            req.UPC,
		ReleaseDate:    releaseDate,
		Version:        version,
		ProductionYear: req.ProductionYear,
		CatalogNumber:  generateCatalogNumber(req.ProductionYear),
		LabelID:        req.LabelID,
		UserID:         userID,
	}

	if err := s.releases.Create(ctx, release); err != nil {
		return nil, apperr.Internal("releases", err)
	}
	return release, nil
}

// GetByID retrieves a release, or a not-found error.
func (s *ReleaseService) GetByID(ctx context.Context, id string) (*model.Release, error) {
	release, err := s.releases.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("releases", err)
	}
	if release == nil {
		return nil, apperr.NotFound("Release not found", "releases")
	}
	return release, nil
}

// List retrieves releases matching the filters, paginated.
func (s *ReleaseService) List(ctx context.Context, filters repository.ReleaseFilters, page, perPage int) ([]model.Release, *response.Pagination, error) {
	page, perPage, limit, offset := normalizePage(page, perPage)

	releases, total, err := s.releases.ListPaginated(ctx, filters, limit, offset)
	if err != nil {
		return nil, nil, apperr.Internal("releases", err)
	}
	if releases == nil {
		releases = []model.Release{}
	}
	return releases, buildPagination(page, perPage, total), nil
}

// generateCatalogNumber builds a unique catalog number for the production
// year, e.g. LENS-2026-4F3A91C2.
func generateCatalogNumber(productionYear int) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("LENS-%d-%s", productionYear, suffix)
}
