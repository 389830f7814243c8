package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock statuses. They are derived from quantity and restock level, never entered.
const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// DefaultRestockLevel applied when an item is created without one.
const DefaultRestockLevel = 5

// InventoryItem a product kept in stock.
type InventoryItem struct {
	ID              int64
	ItemName        string
	Category        *string
	QuantityInStock int
	Unit            *string
	CostPrice       decimal.Decimal
	SellingPrice    decimal.Decimal
	Supplier        *string
	RestockLevel    int
	Status          string
	DateAdded       time.Time
	UpdatedAt       time.Time
}

// StockStatusFor returns the status for a quantity against its restock level.
func StockStatusFor(quantity, restockLevel int) string {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= restockLevel:
		return StockLowStock
	default:
		return StockInStock
	}
}

// IsLowStock true when the item is at or below its restock level (out of stock included).
func IsLowStock(quantity, restockLevel int) bool {
	return StockStatusFor(quantity, restockLevel) != StockInStock
}

// RefreshStatus recomputes Status from the current quantity.
func (i *InventoryItem) RefreshStatus() {
	i.Status = StockStatusFor(i.QuantityInStock, i.RestockLevel)
}

// StockValue cost of the units on hand.
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(int64(i.QuantityInStock)))
}
