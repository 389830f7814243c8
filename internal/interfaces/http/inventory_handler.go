package http

import (
	"github.com/gofiber/fiber/v2"

	appinventory "github.com/jhoicas/progarden-crm/internal/application/inventory"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// InventoryHandler restock suggestions.
type InventoryHandler struct {
	replenishment *appinventory.ReplenishmentUseCase
	log           *logger.Logger
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(replenishment *appinventory.ReplenishmentUseCase, log *logger.Logger) *InventoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryHandler{replenishment: replenishment, log: log.Named("inventory")}
}

// Restock godoc
// @Summary      Items at or below restock level with the quantity to order
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.RestockSuggestionDTO
// @Router       /inventory/restock [get]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	out, err := h.replenishment.RestockList(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
