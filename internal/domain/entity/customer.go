package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer types. "Repeat" is an older spelling still found in imported data.
const (
	CustomerTypeNew       = "New"
	CustomerTypeReturning = "Returning"
	CustomerTypeRepeat    = "Repeat"
)

// StatusPending default payment/delivery/record status.
const StatusPending = "Pending"

// Customer a garden-products buyer, with the details of the last purchase.
type Customer struct {
	ID               int64
	CustomerName     string
	PhoneNumber      string
	Address          *string
	ProductPurchased *string
	Quantity         int
	TotalAmount      decimal.Decimal
	PurchaseDate     *time.Time
	PaymentStatus    string
	PaymentMethod    *string
	DeliveryStatus   string
	Notes            *string
	CustomerType     string
	Channel          *string
	PreferredProduct *string
	FollowUpDate     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsReturning reports whether the customer has bought before.
func (c *Customer) IsReturning() bool {
	return c.CustomerType == CustomerTypeReturning || c.CustomerType == CustomerTypeRepeat
}

// HasSale reports whether the purchase amount should produce an income record.
func (c *Customer) HasSale() bool {
	return c.TotalAmount.GreaterThan(decimal.Zero)
}
