package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryLog one delivery run. It does not touch stock or customers.
type DeliveryLog struct {
	ID             int64
	Date           time.Time
	CustomerName   string
	Location       *string
	ItemDelivered  *string
	Quantity       int
	DeliveryPerson *string
	DeliveryCost   decimal.Decimal
	Notes          *string
	CreatedAt      time.Time
}
