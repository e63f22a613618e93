package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
)

func roleRouter(claims *service.Claims, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) {
			if claims != nil {
				c.Set(ContextKeyClaims, claims)
			}
			c.Next()
		},
		RequireRoles(roles...),
		func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"ok": true})
		},
	)
	return r
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	r := roleRouter(&service.Claims{UserID: "u1", Role: model.RoleAdmin}, model.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesForbidsOtherRole(t *testing.T) {
	r := roleRouter(&service.Claims{UserID: "u1", Role: model.RoleUser}, model.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesWithoutClaimsIsUnauthorized(t *testing.T) {
	r := roleRouter(nil, model.RoleAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIsAdminOrOwner(t *testing.T) {
	admin := &service.Claims{UserID: "admin-1", Role: model.RoleAdmin}
	owner := &service.Claims{UserID: "user-1", Role: model.RoleUser}

	assert.True(t, IsAdminOrOwner(admin, "someone-else"))
	assert.True(t, IsAdminOrOwner(owner, "user-1"))
	assert.False(t, IsAdminOrOwner(owner, "user-2"))
	assert.False(t, IsAdminOrOwner(nil, "user-1"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(&service.Claims{Role: model.RoleAdmin}))
	assert.False(t, IsAdmin(&service.Claims{Role: model.RoleUser}))
	assert.False(t, IsAdmin(nil))
}
