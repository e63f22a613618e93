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

// ArtistHandler handles artist endpoints.
type ArtistHandler struct {
	artistService *service.ArtistService
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// CreateArtist godoc
// POST /api/v1/artists
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("artists"))
		return
	}

	var req model.CreateArtistRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "artists", fields))
		return
	}

	artist, err := h.artistService.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, artist)
}

// ListArtists godoc
// GET /api/v1/artists
// Non-admin callers see only their own active artists.
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	claims := middleware.GetClaims(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	filters := repository.ArtistFilters{LabelID: c.Query("label_id")}
	if !middleware.IsAdmin(claims) {
		filters.UserID = claims.UserID
		filters.Status = model.ArtistStatusActive
	}

	artists, pagination, err := h.artistService.List(c.Request.Context(), filters, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"artists": artists}, pagination)
}

// GetArtist godoc
// GET /api/v1/artists/:id
// Inactive artists are only visible to admins.
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	artist, err := h.artistService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdmin(claims) && artist.Status != model.ArtistStatusActive {
		response.Error(c, apperr.Forbidden("artists"))
		return
	}

	response.Success(c, http.StatusOK, artist)
}

// UpdateArtist godoc
// PATCH /api/v1/artists/:id
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdateArtistRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "artists", fields))
		return
	}

	artist, err := h.artistService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdminOrOwner(claims, artist.UserID) {
		response.Error(c, apperr.Forbidden("artists"))
		return
	}

	updated, err := h.artistService.Update(c.Request.Context(), artist, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteArtist godoc
// DELETE /api/v1/artists/:id
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	claims := middleware.GetClaims(c)

	artist, err := h.artistService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdminOrOwner(claims, artist.UserID) {
		response.Error(c, apperr.Forbidden("artists"))
		return
	}

	if err := h.artistService.Delete(c.Request.Context(), artist.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
