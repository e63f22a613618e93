package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
	"github.com/lensdistro/lens-backend/internal/validator"
)

// LabelHandler handles label endpoints.
type LabelHandler struct {
	labelService *service.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelService *service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// CreateLabel godoc
// POST /api/v1/labels
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("labels"))
		return
	}

	var req model.CreateLabelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "labels", fields))
		return
	}

	label, err := h.labelService.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, label)
}

// ListLabels godoc
// GET /api/v1/labels
func (h *LabelHandler) ListLabels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	filters := repository.LabelFilters{
		Name:    c.Query("name"),
		Country: c.Query("country"),
		UserID:  c.Query("user_id"),
	}

	labels, pagination, err := h.labelService.List(c.Request.Context(), filters, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"labels": labels}, pagination)
}

// GetLabel godoc
// GET /api/v1/labels/:id
func (h *LabelHandler) GetLabel(c *gin.Context) {
	label, err := h.labelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, label)
}

// UpdateLabel godoc
// PATCH /api/v1/labels/:id
func (h *LabelHandler) UpdateLabel(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdateLabelRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "labels", fields))
		return
	}

	label, err := h.labelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdminOrOwner(claims, label.UserID) {
		response.Error(c, apperr.Forbidden("labels"))
		return
	}

	updated, err := h.labelService.Update(c.Request.Context(), label, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteLabel godoc
// DELETE /api/v1/labels/:id
func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	claims := middleware.GetClaims(c)

	label, err := h.labelService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdminOrOwner(claims, label.UserID) {
		response.Error(c, apperr.Forbidden("labels"))
		return
	}

	if err := h.labelService.Delete(c.Request.Context(), label.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
