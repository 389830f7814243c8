package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest body of POST /customers/ and PUT /customers/{id} (full replacement).
type CustomerRequest struct {
	CustomerName     string          `json:"customer_name"`
	PhoneNumber      string          `json:"phone_number"`
	Address          *string         `json:"address"`
	ProductPurchased *string         `json:"product_purchased"`
	Quantity         int             `json:"quantity"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PurchaseDate     *string         `json:"purchase_date"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentMethod    *string         `json:"payment_method"`
	DeliveryStatus   string          `json:"delivery_status"`
	Notes            *string         `json:"notes"`
	CustomerType     string          `json:"customer_type"`
	Channel          *string         `json:"channel"`
	PreferredProduct *string         `json:"preferred_product"`
	FollowUpDate     *string         `json:"follow_up_date"`
}

// CustomerResponse a stored customer.
type CustomerResponse struct {
	ID int64 `json:"id"`
	CustomerRequest
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
