package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRequest body of POST/PUT /inventory/. A status sent by the client is ignored.
type InventoryRequest struct {
	ItemName        string          `json:"item_name"`
	Category        *string         `json:"category"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Unit            *string         `json:"unit"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	Supplier        *string         `json:"supplier"`
	RestockLevel    *int            `json:"restock_level"`
	Status          *string         `json:"status,omitempty"`
}

// InventoryResponse a stored item with its computed status.
type InventoryResponse struct {
	ID              int64           `json:"id"`
	ItemName        string          `json:"item_name"`
	Category        *string         `json:"category"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Unit            *string         `json:"unit"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	Supplier        *string         `json:"supplier"`
	RestockLevel    int             `json:"restock_level"`
	Status          string          `json:"status"`
	DateAdded       time.Time       `json:"date_added"`
}

// RestockSuggestionDTO an item at or below its restock level and how much to order.
type RestockSuggestionDTO struct {
	ItemID             int64           `json:"item_id"`
	ItemName           string          `json:"item_name"`
	Category           *string         `json:"category"`
	Supplier           *string         `json:"supplier"`
	Unit               *string         `json:"unit"`
	QuantityInStock    int             `json:"quantity_in_stock"`
	RestockLevel       int             `json:"restock_level"`
	IdealStock         int             `json:"ideal_stock"`         // ceil(restock_level * 1.5)
	SuggestedOrderQty  int             `json:"suggested_order_qty"` // ideal_stock - quantity_in_stock
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	Status             string          `json:"status"`
	Priority           int             `json:"priority"` // 1 = most urgent
}
