package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/progarden-crm/internal/application/analytics"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// DashboardHandler dashboard widgets.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{uc: uc, log: log.Named("dashboard")}
}

// Stats godoc
// @Summary      Totals, customer counts and current month figures
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.DashboardStatsDTO
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SalesTrend godoc
// @Summary      Income per day
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        days  query  int  false  "window in days (default 30)"
// @Success      200   {array}   dto.SalesTrendPointDTO
// @Router       /dashboard/sales-trend [get]
func (h *DashboardHandler) SalesTrend(c *fiber.Ctx) error {
	days := c.QueryInt("days", appanalytics.DefaultTrendDays)
	out, err := h.uc.SalesTrend(c.Context(), days)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ExpenseBreakdown godoc
// @Summary      Expenses per category
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.ExpenseCategoryDTO
// @Router       /dashboard/expense-breakdown [get]
func (h *DashboardHandler) ExpenseBreakdown(c *fiber.Ctx) error {
	out, err := h.uc.ExpenseBreakdown(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RecentAppointments godoc
// @Summary      Next five appointments
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.AppointmentResponse
// @Router       /dashboard/recent-appointments [get]
func (h *DashboardHandler) RecentAppointments(c *fiber.Ctx) error {
	out, err := h.uc.RecentAppointments(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
