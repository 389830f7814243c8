package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// FinancialHandler endpoints beyond plain CRUD of financial records.
type FinancialHandler struct {
	uc  *usecase.FinancialUseCase
	log *logger.Logger
}

// NewFinancialHandler builds the handler.
func NewFinancialHandler(uc *usecase.FinancialUseCase, log *logger.Logger) *FinancialHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FinancialHandler{uc: uc, log: log.Named("financial")}
}

// FromCustomer godoc
// @Summary      Book the customer's purchase as income
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "customer id"
// @Success      201   {object}  dto.FinancialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /financial/from-customer/{id} [post]
func (h *FinancialHandler) FromCustomer(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.CreateFromCustomer(c.Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Int64("customer_id", id).Int64("id", out.ID).Msg("income booked from customer")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      All-time income, expense and net profit
// @Tags         financial
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.FinancialSummaryDTO
// @Router       /financial/dashboard/summary [get]
func (h *FinancialHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
