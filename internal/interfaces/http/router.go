package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/progarden-crm/internal/application/analytics"
	"github.com/jhoicas/progarden-crm/internal/application/auth"
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	appinventory "github.com/jhoicas/progarden-crm/internal/application/inventory"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// RouterDeps router dependencies.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	CustomerUC      *usecase.CustomerUseCase
	InventoryUC     *usecase.InventoryUseCase
	ReplenishmentUC *appinventory.ReplenishmentUseCase
	SupplierUC      *usecase.SupplierUseCase
	FinancialUC     *usecase.FinancialUseCase
	DeliveryUC      *usecase.DeliveryUseCase
	MarketingUC     *usecase.MarketingUseCase
	AppointmentUC   *usecase.AppointmentUseCase
	ClientUC        *usecase.ClientUseCase
	InvoiceUC       *usecase.InvoiceUseCase
	UserUC          *usecase.UserUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	JWTSecret       string
	Log             *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	app.Post("/token", authHandler.Token)

	// Everything below requires a Bearer token. The middleware is attached per
	// group so /health, /docs and unknown paths are left alone.
	authMW := AuthMiddleware(deps.JWTSecret)
	app.Get("/me", authMW, authHandler.Me)

	NewResourceHandler[dto.CustomerRequest, dto.CustomerResponse]("customers", deps.CustomerUC, log).
		Mount(app.Group("/customers", authMW))

	// Inventory: /restock before /:id
	inventory := app.Group("/inventory", authMW)
	inventory.Get("/restock", NewInventoryHandler(deps.ReplenishmentUC, log).Restock)
	NewResourceHandler[dto.InventoryRequest, dto.InventoryResponse]("inventory", deps.InventoryUC, log).
		Mount(inventory)

	NewResourceHandler[dto.SupplierRequest, dto.SupplierResponse]("suppliers", deps.SupplierUC, log).
		Mount(app.Group("/suppliers", authMW))

	financial := app.Group("/financial", authMW)
	financialHandler := NewFinancialHandler(deps.FinancialUC, log)
	financial.Post("/from-customer/:id", financialHandler.FromCustomer)
	financial.Get("/dashboard/summary", financialHandler.Summary)
	NewResourceHandler[dto.FinancialRequest, dto.FinancialResponse]("financial", deps.FinancialUC, log).
		Mount(financial)

	NewResourceHandler[dto.DeliveryRequest, dto.DeliveryResponse]("deliveries", deps.DeliveryUC, log).
		Mount(app.Group("/deliveries", authMW))
	NewResourceHandler[dto.MarketingRequest, dto.MarketingResponse]("marketing", deps.MarketingUC, log).
		Mount(app.Group("/marketing", authMW))
	NewResourceHandler[dto.AppointmentRequest, dto.AppointmentResponse]("appointments", deps.AppointmentUC, log).
		Mount(app.Group("/appointments", authMW))
	NewResourceHandler[dto.ClientRequest, dto.ClientResponse]("clients", deps.ClientUC, log).
		Mount(app.Group("/clients", authMW))

	invoices := app.Group("/invoices", authMW)
	invoices.Get("/:id/pdf", NewInvoiceHandler(deps.InvoiceUC, log).PDF)
	NewResourceHandler[dto.InvoiceRequest, dto.InvoiceResponse]("invoices", deps.InvoiceUC, log).
		Mount(invoices)

	// Users (admin only)
	NewResourceHandler[dto.UserRequest, dto.UserResponse]("users", deps.UserUC, log).
		Mount(app.Group("/users", authMW, RequireAdmin()))

	dashboard := app.Group("/dashboard", authMW)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/sales-trend", dashboardHandler.SalesTrend)
	dashboard.Get("/expense-breakdown", dashboardHandler.ExpenseBreakdown)
	dashboard.Get("/recent-appointments", dashboardHandler.RecentAppointments)
}
