package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
	"github.com/lensdistro/lens-backend/internal/validator"
)

// LyricsHandler handles lyrics endpoints.
type LyricsHandler struct {
	lyricsService *service.LyricsService
}

// NewLyricsHandler creates a new LyricsHandler.
func NewLyricsHandler(lyricsService *service.LyricsService) *LyricsHandler {
	return &LyricsHandler{lyricsService: lyricsService}
}

// CreateLyrics godoc
// POST /api/v1/lyrics
func (h *LyricsHandler) CreateLyrics(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("lyrics"))
		return
	}

	var req model.CreateLyricsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "lyrics", fields))
		return
	}

	lyrics, err := h.lyricsService.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lyrics)
}

// ListLyrics godoc
// GET /api/v1/lyrics
func (h *LyricsHandler) ListLyrics(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	lyrics, pagination, err := h.lyricsService.List(c.Request.Context(), c.Query("track_id"), page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"lyrics": lyrics}, pagination)
}

// GetLyrics godoc
// GET /api/v1/lyrics/:id
func (h *LyricsHandler) GetLyrics(c *gin.Context) {
	lyrics, err := h.lyricsService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lyrics)
}
