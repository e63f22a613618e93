package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/apperr"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
)

// RequireRoles checks that the acting identity's role is in the allow-list.
// The decision is a pure comparison against the already-resolved claims —
// no I/O.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortError(c, apperr.Unauthorized("rbac"))
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		response.AbortError(c, apperr.Forbidden("rbac"))
	}
}

// IsAdminOrOwner implements the ownership decision: the admin role
// short-circuits to allow; otherwise the resource's owning user id must
// equal the acting identity's id.
func IsAdminOrOwner(claims *service.Claims, ownerID string) bool {
	if claims == nil {
		return false
	}
	if claims.Role == model.RoleAdmin {
		return true
	}
	return claims.UserID == ownerID
}

// IsAdmin reports whether the acting identity holds the administrative role.
func IsAdmin(claims *service.Claims) bool {
	return claims != nil && claims.Role == model.RoleAdmin
}
