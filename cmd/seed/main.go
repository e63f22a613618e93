package main

import (
	"context"

	"github.com/lensdistro/lens-backend/internal/config"
	"github.com/lensdistro/lens-backend/internal/database"
	"github.com/lensdistro/lens-backend/internal/logger"
	"github.com/lensdistro/lens-backend/internal/repository"
	"github.com/lensdistro/lens-backend/internal/seed"
)

// Runs the same bootstrap sequence the server performs at startup, for
// operators who want to seed a database out of band.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		cfg,
		repository.NewPermissionRepository(pool),
		repository.NewRoleRepository(pool),
		repository.NewUserRepository(pool),
	)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Msg("Seeding complete")
}
