package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest body of POST/PUT /suppliers/.
type SupplierRequest struct {
	SupplierName    string          `json:"supplier_name"`
	ProductSupplied *string         `json:"product_supplied"`
	Contact         *string         `json:"contact"`
	PaymentTerms    *string         `json:"payment_terms"`
	LastPurchase    *string         `json:"last_purchase"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Balance         decimal.Decimal `json:"balance"`
	Notes           *string         `json:"notes"`
}

// SupplierResponse a stored supplier.
type SupplierResponse struct {
	ID int64 `json:"id"`
	SupplierRequest
	CreatedAt time.Time `json:"created_at"`
}
