package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryRequest body of POST/PUT /deliveries/.
type DeliveryRequest struct {
	Date           string          `json:"date"`
	CustomerName   string          `json:"customer_name"`
	Location       *string         `json:"location"`
	ItemDelivered  *string         `json:"item_delivered"`
	Quantity       int             `json:"quantity"`
	DeliveryPerson *string         `json:"delivery_person"`
	DeliveryCost   decimal.Decimal `json:"delivery_cost"`
	Notes          *string         `json:"notes"`
}

// DeliveryResponse a stored delivery.
type DeliveryResponse struct {
	ID int64 `json:"id"`
	DeliveryRequest
	CreatedAt time.Time `json:"created_at"`
}
