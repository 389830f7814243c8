package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionIncome  = "Income"
	TransactionExpense = "Expense"
)

// CategorySales category of the income records generated from customer purchases.
const CategorySales = "Sales"

// FinancialRecord an income or expense entry. CustomerID is optional and
// CustomerName is filled on reads only.
type FinancialRecord struct {
	ID              int64
	Date            time.Time
	TransactionType string
	Description     *string
	Category        *string
	Amount          decimal.Decimal
	PaymentMethod   *string
	Status          string
	Notes           *string
	CustomerID      *int64
	CustomerName    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValidTransactionType reports whether t is Income or Expense.
func IsValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}
