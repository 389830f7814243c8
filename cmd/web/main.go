package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/progarden-crm/internal/client"
	httpRouter "github.com/jhoicas/progarden-crm/internal/interfaces/http"
	"github.com/jhoicas/progarden-crm/internal/interfaces/web"
	"github.com/jhoicas/progarden-crm/pkg/config"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "web",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api_url", cfg.API.BaseURL).
		Msg("starting dashboard")

	srv, err := web.New(client.New(cfg.API), cfg.Web, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build dashboard")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + " dashboard",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "web"})
	})
	srv.Register(app)

	go func() {
		if err := app.Listen(cfg.Web.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("dashboard stopped")
}
