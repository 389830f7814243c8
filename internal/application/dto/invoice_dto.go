package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest body of POST/PUT /invoices/.
type InvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       *string         `json:"due_date"`
	Services      []string        `json:"services"`
}

// InvoiceResponse a stored invoice.
type InvoiceResponse struct {
	ID int64 `json:"id"`
	InvoiceRequest
	CreatedAt time.Time `json:"created_at"`
}
