package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser godoc
// GET /api/v1/users/:id
// Admin may read any account; everyone else only their own.
func (h *UserHandler) GetUser(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id := c.Param("id")

	if !middleware.IsAdminOrOwner(claims, id) {
		response.Error(c, apperr.Forbidden("users"))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser godoc
// DELETE /api/v1/users/:id
// Admin may delete any account; everyone else only their own. Existing
// tokens for the deleted account stay valid until expiry unless revoked.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id := c.Param("id")

	if !middleware.IsAdminOrOwner(claims, id) {
		response.Error(c, apperr.Forbidden("users"))
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
