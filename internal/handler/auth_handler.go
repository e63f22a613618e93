package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
	"github.com/lensdistro/lens-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Signup godoc
// POST /api/v1/auth/signup
// Creates an account and returns it with a short-lived token.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "auth", fields))
		return
	}

	user, token, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, model.AuthResponse{User: user, Token: token})
}

// Login godoc
// POST /api/v1/auth/login
// Checks credentials and returns the account with a long-lived token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Error(c, apperr.ValidationFields("Validation failed", "auth", fields))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.AuthResponse{User: user, Token: token})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the acting identity's claims plus the live account row. The
// guard trusts token claims; this is the one place clients read fresh
// account state (status, role).
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("auth"))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"identity": gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"role":  claims.Role,
		},
		"user": user,
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Revokes the presented token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, apperr.Unauthorized("auth"))
		return
	}

	if err := h.authService.RevokeToken(c.Request.Context(), claims); err != nil {
		response.Error(c, apperr.Internal("auth", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
