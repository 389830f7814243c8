package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses.
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

// InvoiceStatuses accepted values.
var InvoiceStatuses = []string{InvoicePending, InvoicePaid, InvoiceOverdue}

// Invoice a bill sent to a client for one or more services.
type Invoice struct {
	ID            int64
	InvoiceNumber string
	ClientName    string
	Amount        decimal.Decimal
	Status        string
	DueDate       *time.Time
	Services      []string
	CreatedAt     time.Time
}

// IsOverdue true when the invoice is marked overdue, or still pending after its due date.
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.Status == InvoiceOverdue {
		return true
	}
	if i.Status != InvoicePending || i.DueDate == nil {
		return false
	}
	y, m, d := today.Date()
	return i.DueDate.Before(time.Date(y, m, d, 0, 0, 0, 0, i.DueDate.Location()))
}
