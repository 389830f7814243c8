package usecase

import (
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// InventoryUseCase inventory CRUD. Status is recomputed from quantity and restock
// level on every write; whatever the client sends for it is ignored.
type InventoryUseCase struct {
	crud[entity.InventoryItem, dto.InventoryRequest, dto.InventoryResponse]
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{crud[entity.InventoryItem, dto.InventoryRequest, dto.InventoryResponse]{
		repo:       repo,
		toEntity:   inventoryFromRequest,
		toResponse: toInventoryResponse,
		setID:      func(e *entity.InventoryItem, id int64) { e.ID = id },
	}}
}

func inventoryFromRequest(in dto.InventoryRequest) (*entity.InventoryItem, error) {
	name, err := required("item_name", in.ItemName)
	if err != nil {
		return nil, err
	}
	if err := nonNegativeInt("quantity_in_stock", in.QuantityInStock); err != nil {
		return nil, err
	}
	if err := nonNegative("cost_price", in.CostPrice); err != nil {
		return nil, err
	}
	if err := nonNegative("selling_price", in.SellingPrice); err != nil {
		return nil, err
	}
	restock := entity.DefaultRestockLevel
	if in.RestockLevel != nil {
		restock = *in.RestockLevel
	}
	if err := nonNegativeInt("restock_level", restock); err != nil {
		return nil, err
	}
	item := &entity.InventoryItem{
		ItemName:        name,
		Category:        dto.Optional(in.Category),
		QuantityInStock: in.QuantityInStock,
		Unit:            dto.Optional(in.Unit),
		CostPrice:       in.CostPrice,
		SellingPrice:    in.SellingPrice,
		Supplier:        dto.Optional(in.Supplier),
		RestockLevel:    restock,
	}
	item.RefreshStatus()
	return item, nil
}

func toInventoryResponse(i *entity.InventoryItem) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:              i.ID,
		ItemName:        i.ItemName,
		Category:        i.Category,
		QuantityInStock: i.QuantityInStock,
		Unit:            i.Unit,
		CostPrice:       i.CostPrice,
		SellingPrice:    i.SellingPrice,
		Supplier:        i.Supplier,
		RestockLevel:    i.RestockLevel,
		Status:          entity.StockStatusFor(i.QuantityInStock, i.RestockLevel),
		DateAdded:       i.DateAdded,
	}
}
