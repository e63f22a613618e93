package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/handler"
	"github.com/lensdistro/lens-backend/internal/middleware"
	"github.com/lensdistro/lens-backend/internal/model"
	"github.com/lensdistro/lens-backend/internal/response"
	"github.com/lensdistro/lens-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Role    *handler.RoleHandler
	User    *handler.UserHandler
	Artist  *handler.ArtistHandler
	Label   *handler.LabelHandler
	Release *handler.ReleaseHandler
	Lyrics  *handler.LyricsHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
	}

	// ─── 2. User Group (JWT, ownership checked in handler) ─────────────
	users := router.Group("/api/v1/users")
	users.Use(middleware.RequireAuth(authService))
	{
		users.GET("/:id", handlers.User.GetUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	// ─── 3. Role Group (JWT + admin role) ──────────────────────────────
	roles := router.Group("/api/v1/roles")
	roles.Use(
		middleware.RequireAuth(authService),
		middleware.RequireRoles(model.RoleAdmin),
	)
	{
		roles.GET("", handlers.Role.ListRoles)
		roles.POST("", handlers.Role.CreateRole)
		roles.GET("/:id", handlers.Role.GetRole)
		roles.GET("/:id/permissions", handlers.Role.ListRolePermissions)
		roles.POST("/:id/permissions", handlers.Role.GrantPermission)
	}

	permissions := router.Group("/api/v1/permissions")
	permissions.Use(
		middleware.RequireAuth(authService),
		middleware.RequireRoles(model.RoleAdmin),
	)
	{
		permissions.GET("", handlers.Role.ListPermissions)
	}

	// ─── 4. Catalog Groups (JWT, ownership checked in handlers) ────────
	artists := router.Group("/api/v1/artists")
	artists.Use(middleware.RequireAuth(authService))
	{
		artists.GET("", handlers.Artist.ListArtists)
		artists.POST("", handlers.Artist.CreateArtist)
		artists.GET("/:id", handlers.Artist.GetArtist)
		artists.PUT("/:id", handlers.Artist.UpdateArtist)
		artists.DELETE("/:id", handlers.Artist.DeleteArtist)
	}

	labels := router.Group("/api/v1/labels")
	labels.Use(middleware.RequireAuth(authService))
	{
		labels.GET("", handlers.Label.ListLabels)
		labels.POST("", handlers.Label.CreateLabel)
		labels.GET("/:id", handlers.Label.GetLabel)
		labels.PUT("/:id", handlers.Label.UpdateLabel)
		labels.DELETE("/:id", handlers.Label.DeleteLabel)
	}

	releases := router.Group("/api/v1/releases")
	releases.Use(middleware.RequireAuth(authService))
	{
		releases.GET("", handlers.Release.ListReleases)
		releases.POST("", handlers.Release.CreateRelease)
		releases.GET("/:id", handlers.Release.GetRelease)
	}

	lyrics := router.Group("/api/v1/lyrics")
	lyrics.Use(middleware.RequireAuth(authService))
	{
		lyrics.GET("", handlers.Lyrics.ListLyrics)
		lyrics.POST("", handlers.Lyrics.CreateLyrics)
		lyrics.GET("/:id", handlers.Lyrics.GetLyrics)
	}

	return router
}
