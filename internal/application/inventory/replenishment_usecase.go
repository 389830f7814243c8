package inventory

import (
	"context"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// idealStockFactor target stock as a multiple of the restock level.
const idealStockFactor = 1.5

// ReplenishmentUseCase builds the restock list: items at or below their restock
// level with the quantity to order and its estimated cost.
type ReplenishmentUseCase struct {
	repo repository.InventoryRepository
}

// NewReplenishmentUseCase builds the use case.
func NewReplenishmentUseCase(repo repository.InventoryRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{repo: repo}
}

// RestockList suggestions ordered by urgency: out of stock first, then by the
// largest deficit under the restock level, then by name.
func (uc *ReplenishmentUseCase) RestockList(ctx context.Context) ([]dto.RestockSuggestionDTO, error) {
	items, err := uc.repo.ListAtOrBelowRestock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestockSuggestionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, Suggest(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aOut, bOut := a.QuantityInStock <= 0, b.QuantityInStock <= 0
		if aOut != bOut {
			return aOut
		}
		defA := a.RestockLevel - a.QuantityInStock
		defB := b.RestockLevel - b.QuantityInStock
		if defA != defB {
			return defA > defB
		}
		return a.ItemName < b.ItemName
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}

// Suggest computes the order suggestion of a single item.
func Suggest(item *entity.InventoryItem) dto.RestockSuggestionDTO {
	ideal := int(math.Ceil(float64(item.RestockLevel) * idealStockFactor))
	qty := ideal - item.QuantityInStock
	if qty < 0 {
		qty = 0
	}
	return dto.RestockSuggestionDTO{
		ItemID:             item.ID,
		ItemName:           item.ItemName,
		Category:           item.Category,
		Supplier:           item.Supplier,
		Unit:               item.Unit,
		QuantityInStock:    item.QuantityInStock,
		RestockLevel:       item.RestockLevel,
		IdealStock:         ideal,
		SuggestedOrderQty:  qty,
		UnitCost:           item.CostPrice,
		EstimatedOrderCost: item.CostPrice.Mul(decimal.NewFromInt(int64(qty))),
		Status:             entity.StockStatusFor(item.QuantityInStock, item.RestockLevel),
	}
}
