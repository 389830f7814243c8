package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

type stubInventory struct {
	items []*entity.InventoryItem
}

func (s *stubInventory) List(context.Context) ([]*entity.InventoryItem, error)         { return s.items, nil }
func (s *stubInventory) GetByID(context.Context, int64) (*entity.InventoryItem, error) { return nil, nil }
func (s *stubInventory) Create(context.Context, *entity.InventoryItem) error           { return nil }
func (s *stubInventory) Update(context.Context, *entity.InventoryItem) error           { return nil }
func (s *stubInventory) Delete(context.Context, int64) error                           { return nil }

func (s *stubInventory) ListAtOrBelowRestock(context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, i := range s.items {
		if i.QuantityInStock <= i.RestockLevel {
			out = append(out, i)
		}
	}
	return out, nil
}

func TestSuggest(t *testing.T) {
	s := Suggest(&entity.InventoryItem{ID: 1, ItemName: "Hose", QuantityInStock: 2, RestockLevel: 5, CostPrice: decimal.NewFromInt(3500)})
	assert.Equal(t, 8, s.IdealStock, "ceil(5 * 1.5)")
	assert.Equal(t, 6, s.SuggestedOrderQty)
	assert.Equal(t, "21000", s.EstimatedOrderCost.String())
	assert.Equal(t, entity.StockLowStock, s.Status)

	s = Suggest(&entity.InventoryItem{ItemName: "Spade", QuantityInStock: 9, RestockLevel: 4, CostPrice: decimal.NewFromInt(10)})
	assert.Equal(t, 0, s.SuggestedOrderQty, "never negative")
	assert.True(t, s.EstimatedOrderCost.IsZero())
}

func TestRestockList_OrderAndPriority(t *testing.T) {
	repo := &stubInventory{items: []*entity.InventoryItem{
		{ID: 1, ItemName: "Rake", QuantityInStock: 4, RestockLevel: 5},
		{ID: 2, ItemName: "Seeds", QuantityInStock: 0, RestockLevel: 2},
		{ID: 3, ItemName: "Gloves", QuantityInStock: 1, RestockLevel: 10},
		{ID: 4, ItemName: "Shears", QuantityInStock: 20, RestockLevel: 5},
	}}
	out, err := NewReplenishmentUseCase(repo).RestockList(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "Seeds", out[0].ItemName)
	assert.Equal(t, "Gloves", out[1].ItemName)
	assert.Equal(t, "Rake", out[2].ItemName)
	for i, s := range out {
		assert.Equal(t, i+1, s.Priority)
	}
}

func TestRestockList_Empty(t *testing.T) {
	out, err := NewReplenishmentUseCase(&stubInventory{}).RestockList(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
