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

// RoleHandler handles role and permission management endpoints.
type RoleHandler struct {
	roleService *service.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// CreateRole godoc
// POST /api/v1/roles
// Creates a role attributed to the acting user.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("roles"))
		return
	}

	var req model.CreateRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "roles", fields))
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, role)
}

// ListRoles godoc
// GET /api/v1/roles
// Lists roles with pagination. name and description match partially and
// case-insensitively; created_by_id matches exactly.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	filters := model.RoleFilters{
		Name:        c.Query("name"),
		Description: c.Query("description"),
		CreatedByID: c.Query("created_by_id"),
	}

	roles, pagination, err := h.roleService.ListRoles(c.Request.Context(), filters, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"roles": roles}, pagination)
}

// GetRole godoc
// GET /api/v1/roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	role, err := h.roleService.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, role)
}

// GrantPermission godoc
// POST /api/v1/roles/:id/permissions
// Attaches a permission to a role. A duplicate grant is a 409.
func (h *RoleHandler) GrantPermission(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("roles"))
		return
	}

	var req model.GrantPermissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "roles", fields))
		return
	}

	grant, err := h.roleService.GrantPermission(c.Request.Context(), c.Param("id"), req.PermissionID, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, grant)
}

// ListRolePermissions godoc
// GET /api/v1/roles/:id/permissions
func (h *RoleHandler) ListRolePermissions(c *gin.Context) {
	names, err := h.roleService.ListRolePermissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"permissions": names})
}

// ListPermissions godoc
// GET /api/v1/permissions
// Lists the permission catalog.
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.roleService.ListPermissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"permissions": permissions})
}
