package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO GET /dashboard/stats.
type DashboardStatsDTO struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	TotalCustomers  int             `json:"total_customers"`
	RepeatCustomers int             `json:"repeat_customers"`

	// Current calendar month.
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthLabel      string          `json:"month_label"` // e.g. "March 2026"
}

// SalesTrendPointDTO income booked on one day.
type SalesTrendPointDTO struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseCategoryDTO expenses of one category.
type ExpenseCategoryDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
