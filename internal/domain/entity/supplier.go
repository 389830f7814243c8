package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier a vendor the business buys stock from. Balance is entered by hand.
type Supplier struct {
	ID              int64
	SupplierName    string
	ProductSupplied *string
	Contact         *string
	PaymentTerms    *string
	LastPurchase    *time.Time
	AmountPaid      decimal.Decimal
	Balance         decimal.Decimal
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
