package service

import (
	"context"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/response"
)

// LabelStore is the persistence surface for labels.
type LabelStore interface {
	Create(ctx context.Context, l *model.Label) error
	GetByID(ctx context.Context, id string) (*model.Label, error)
	ListPaginated(ctx context.Context, filters repository.LabelFilters, limit, offset int) ([]model.Label, int, error)
	Update(ctx context.Context, l *model.Label) error
	Delete(ctx context.Context, id string) (bool, error)
}

// LabelService handles label business logic.
type LabelService struct {
	labels LabelStore
}

// NewLabelService creates a new LabelService.
func NewLabelService(labels LabelStore) *LabelService {
	return &LabelService{labels: labels}
}

// Create registers a label owned by the acting user.
func (s *LabelService) Create(ctx context.Context, req model.CreateLabelRequest, userID string) (*model.Label, error) {
	label := &model.Label{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Country:     req.Country,
		UserID:      userID,
	}

	if err := s.labels.Create(ctx, label); err != nil {
		return nil, apperr.Internal("labels", err)
	}
	return label, nil
}

// GetByID retrieves a label, or a not-found error.
func (s *LabelService) GetByID(ctx context.Context, id string) (*model.Label, error) {
	label, err := s.labels.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("labels", err)
	}
	if label == nil {
		return nil, apperr.NotFound("Label not found", "labels")
	}
	return label, nil
}

// List retrieves labels matching the filters, paginated.
func (s *LabelService) List(ctx context.Context, filters repository.LabelFilters, page, perPage int) ([]model.Label, *response.Pagination, error) {
	page, perPage, limit, offset := normalizePage(page, perPage)

	labels, total, err := s.labels.ListPaginated(ctx, filters, limit, offset)
	if err != nil {
		return nil, nil, apperr.Internal("labels", err)
	}
	if labels == nil {
		labels = []model.Label{}
	}
	return labels, buildPagination(page, perPage, total), nil
}

// Update applies the provided fields to a label; absent fields keep their
// current values.
func (s *LabelService) Update(ctx context.Context, label *model.Label, req model.UpdateLabelRequest) (*model.Label, error) {
	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.Description != nil {
		label.Description = req.Description
	}
	if req.Email != nil {
		label.Email = req.Email
	}
	if req.Country != nil {
		label.Country = req.Country
	}

	if err := s.labels.Update(ctx, label); err != nil {
		return nil, apperr.Internal("labels", err)
	}
	return label, nil
}

// Delete removes a label.
func (s *LabelService) Delete(ctx context.Context, id string) error {
	found, err := s.labels.Delete(ctx, id)
	if err != nil {
		return apperr.Internal("labels", err)
	}
	if !found {
		return apperr.NotFound("Label not found", "labels")
	}
	return nil
}
