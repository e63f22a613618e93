package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/database"
	"github.com/lensdistro/lens-backend/internal/handler"
	"github.com/lensdistro/lens-backend/internal/logger"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/router"
	"github.com/lensdistro/lens-backend/internal/seed"
	"github.com/lensdistro/lens-backend/internal/service"
	"github.com/lensdistro/lens-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Lens Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	// Redis backs the token revocation denylist; without it, logout is a
	// client-side discard and tokens remain valid until expiry.
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	permissionRepo := repository.NewPermissionRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	labelRepo := repository.NewLabelRepository(pool)
	releaseRepo := repository.NewReleaseRepository(pool)
	lyricsRepo := repository.NewLyricsRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, userRepo)
	roleService := service.NewRoleService(roleRepo, permissionRepo)
	userService := service.NewUserService(userRepo)
	artistService := service.NewArtistService(artistRepo)
	labelService := service.NewLabelService(labelRepo)
	releaseService := service.NewReleaseService(releaseRepo)
	lyricsService := service.NewLyricsService(lyricsRepo)

	// ─── Bootstrap (permission catalog, super-admin role, admin user) ──
	seeder := seed.NewSeeder(cfg, permissionRepo, roleRepo, userRepo)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Bootstrap seeding failed")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService, userService),
		Role:    handler.NewRoleHandler(roleService),
		User:    handler.NewUserHandler(userService),
		Artist:  handler.NewArtistHandler(artistService),
		Label:   handler.NewLabelHandler(labelService),
		Release: handler.NewReleaseHandler(releaseService),
		Lyrics:  handler.NewLyricsHandler(lyricsService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
