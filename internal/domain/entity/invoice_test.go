package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_IsOverdue(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	same := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Invoice{Status: InvoiceOverdue}).IsOverdue(today))
	assert.True(t, (&Invoice{Status: InvoicePending, DueDate: &past}).IsOverdue(today))
	assert.False(t, (&Invoice{Status: InvoicePending, DueDate: &same}).IsOverdue(today), "due today is not overdue yet")
	assert.False(t, (&Invoice{Status: InvoicePaid, DueDate: &past}).IsOverdue(today))
	assert.False(t, (&Invoice{Status: InvoicePending}).IsOverdue(today))
}
