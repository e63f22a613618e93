package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
)

type stubReleaseStore struct {
	existing *model.Release
	created  []*model.Release
}

func (s *stubReleaseStore) Create(_ context.Context, rel *model.Release) error {
	rel.ID = "rel-1"
	s.created = append(s.created, rel)
	return nil
}

func (s *stubReleaseStore) GetByID(_ context.Context, id string) (*model.Release, error) {
	if s.existing != nil && s.existing.ID == id {
		return s.existing, nil
	}
	return nil, nil
}

func (s *stubReleaseStore) FindDuplicate(_ context.Context, _, _, _ string, _ int, _ *string, _ time.Time) (*model.Release, error) {
	return s.existing, nil
}

func (s *stubReleaseStore) ListPaginated(_ context.Context, _ repository.ReleaseFilters, limit, offset int) ([]model.Release, int, error) {
	return nil, 0, nil
}

func TestCreateReleaseDefaultsAndCatalogNumber(t *testing.T) {
	store := &stubReleaseStore{}
	svc := NewReleaseService(store)

	release, err := svc.Create(context.Background(), model.CreateReleaseRequest{
		Title:          "First Light",
		ReleaseDate:    "2026-03-15",
		ProductionYear: 2026,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "original", release.Version)
	assert.Equal(t, "user-1", release.UserID)
	assert.Regexp(t, regexp.MustCompile(`^LENS-2026-[0-9A-F]{8}$`), release.CatalogNumber)
}

func TestCreateReleaseBadDate(t *testing.T) {
	svc := NewReleaseService(&stubReleaseStore{})

	_, err := svc.Create(context.Background(), model.CreateReleaseRequest{
		Title:       "First Light",
		ReleaseDate: "15/03/2026",
	}, "user-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Fields, "release_date")
}

func TestCreateReleaseDuplicateConflict(t *testing.T) {
	store := &stubReleaseStore{existing: &model.Release{ID: "rel-existing"}}
	svc := NewReleaseService(store)

	_, err := svc.Create(context.Background(), model.CreateReleaseRequest{
		Title:          "First Light",
		ReleaseDate:    "2026-03-15",
		ProductionYear: 2026,
	}, "user-1")
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, map[string]string{"id": "rel-existing"}, appErr.Data)
	assert.Empty(t, store.created)
}

func TestListReleasesEmptyIsNotNil(t *testing.T) {
	svc := NewReleaseService(&stubReleaseStore{})

	releases, pagination, err := svc.List(context.Background(), repository.ReleaseFilters{}, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, releases)
	assert.Empty(t, releases)
	assert.Equal(t, 0, pagination.TotalItems)
}
