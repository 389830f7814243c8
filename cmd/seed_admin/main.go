// seed_admin creates the first admin user, or promotes and resets the password
// of an existing one with the same username.
//
// Usage: ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/progarden-crm/pkg/config"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_admin"})

	if cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is required")
	}
	hash, err := usecase.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		log.Fatal().Err(err).Msg("look up admin")
	}

	var email *string
	if cfg.Admin.Email != "" {
		email = &cfg.Admin.Email
	}

	if existing != nil {
		existing.PasswordHash = hash
		existing.IsAdmin = true
		existing.IsActive = true
		if email != nil {
			existing.Email = email
		}
		if err := users.Update(ctx, existing); err != nil {
			log.Fatal().Err(err).Msg("update admin")
		}
		log.Info().Str("username", existing.Username).Int64("id", existing.ID).Msg("admin updated")
		return
	}

	admin := &entity.User{
		Username:     cfg.Admin.Username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}
	log.Info().Str("username", admin.Username).Int64("id", admin.ID).Msg("admin created")
}
