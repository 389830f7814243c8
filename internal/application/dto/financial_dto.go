package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRequest body of POST/PUT /financial/.
type FinancialRequest struct {
	Date            string          `json:"date"`
	TransactionType string          `json:"transaction_type"`
	Description     *string         `json:"description"`
	Category        *string         `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   *string         `json:"payment_method"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes"`
	CustomerID      *int64          `json:"customer_id"`
}

// FinancialResponse a stored record. CustomerName is read-only.
type FinancialResponse struct {
	ID int64 `json:"id"`
	FinancialRequest
	CustomerName *string   `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// FinancialSummaryDTO GET /financial/dashboard/summary.
type FinancialSummaryDTO struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}
