package repository

import (
	"context"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// InventoryRepository persistence port for InventoryItem.
type InventoryRepository interface {
	CRUDRepository[entity.InventoryItem]
	// ListAtOrBelowRestock items whose quantity is at or below their restock level.
	ListAtOrBelowRestock(ctx context.Context) ([]*entity.InventoryItem, error)
}
