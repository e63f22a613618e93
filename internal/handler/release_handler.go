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

// ReleaseHandler handles release endpoints.
type ReleaseHandler struct {
	releaseService *service.ReleaseService
}

// NewReleaseHandler creates a new ReleaseHandler.
func NewReleaseHandler(releaseService *service.ReleaseService) *ReleaseHandler {
	return &ReleaseHandler{releaseService: releaseService}
}

// CreateRelease godoc
// POST /api/v1/releases
func (h *ReleaseHandler) CreateRelease(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("releases"))
		return
	}

	var req model.CreateReleaseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "releases", fields))
		return
	}

	release, err := h.releaseService.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, release)
}

// ListReleases godoc
// GET /api/v1/releases
// Non-admin callers are scoped to their own releases; admins may filter by
// any user_id.
func (h *ReleaseHandler) ListReleases(c *gin.Context) {
	claims := middleware.GetClaims(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	filters := repository.ReleaseFilters{LabelID: c.Query("label_id")}
	if middleware.IsAdmin(claims) {
		filters.UserID = c.Query("user_id")
	} else {
		filters.UserID = claims.UserID
	}

	releases, pagination, err := h.releaseService.List(c.Request.Context(), filters, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"releases": releases}, pagination)
}

// GetRelease godoc
// GET /api/v1/releases/:id
func (h *ReleaseHandler) GetRelease(c *gin.Context) {
	release, err := h.releaseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, release)
}
