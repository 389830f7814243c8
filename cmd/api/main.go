package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/progarden-crm/internal/application/analytics"
	"github.com/jhoicas/progarden-crm/internal/application/auth"
	"github.com/jhoicas/progarden-crm/internal/application/followup"
	appinventory "github.com/jhoicas/progarden-crm/internal/application/inventory"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/progarden-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/progarden-crm/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/progarden-crm/internal/interfaces/http"
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
		Service: "api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting API")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migration applied")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	financialRepo := postgres.NewFinancialRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	marketingRepo := postgres.NewMarketingRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Notifications: real senders only when credentials are configured.
	fallback := notify.NewLogNotifier(log)
	var loginNotifier auth.LoginNotifier = fallback
	if cfg.SMTP.Enabled() {
		loginNotifier = notify.NewSMTPMailer(cfg.SMTP)
	}
	var sms followup.SMSSender = fallback
	if cfg.Twilio.Enabled() {
		sms = notify.NewTwilioSMS(cfg.Twilio, log)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, loginNotifier, log)

	deps := httpRouter.RouterDeps{
		AuthUC:          authUC,
		CustomerUC:      usecase.NewCustomerUseCase(customerRepo, txRunner),
		InventoryUC:     usecase.NewInventoryUseCase(inventoryRepo),
		ReplenishmentUC: appinventory.NewReplenishmentUseCase(inventoryRepo),
		SupplierUC:      usecase.NewSupplierUseCase(supplierRepo),
		FinancialUC:     usecase.NewFinancialUseCase(financialRepo, customerRepo, analyticsRepo),
		DeliveryUC:      usecase.NewDeliveryUseCase(deliveryRepo),
		MarketingUC:     usecase.NewMarketingUseCase(marketingRepo),
		AppointmentUC:   usecase.NewAppointmentUseCase(appointmentRepo),
		ClientUC:        usecase.NewClientUseCase(clientRepo),
		InvoiceUC:       usecase.NewInvoiceUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator("Pro Garden")),
		UserUC:          usecase.NewUserUseCase(userRepo),
		DashboardUC:     appanalytics.NewDashboardUseCase(analyticsRepo),
		JWTSecret:       cfg.JWT.Secret,
		Log:             log,
	}

	// Follow-up SMS reminders
	var scheduler interface{ Stop() context.Context }
	if cfg.FollowUp.Cron != "" {
		job := followup.NewReminderJob(customerRepo, sms, log)
		c, err := job.Schedule(cfg.FollowUp.Cron)
		if err != nil {
			log.Fatal().Err(err).Msg("schedule follow-up reminders")
		}
		c.Start()
		scheduler = c
		log.Info().Str("cron", cfg.FollowUp.Cron).Bool("twilio", cfg.Twilio.Enabled()).Msg("follow-up reminders scheduled")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ProGarden CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("API stopped")
}
