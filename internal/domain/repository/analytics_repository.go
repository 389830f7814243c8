package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// DailyAmount income booked on one day.
type DailyAmount struct {
	Day    time.Time
	Amount decimal.Decimal
}

// CategoryAmount expenses of one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// AnalyticsRepository read-only queries behind the dashboard.
type AnalyticsRepository interface {
	// IncomeExpense sums income and expense records. A zero from/to leaves that side open.
	IncomeExpense(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)

	// CustomerCounts total customers and those typed Returning or Repeat.
	CustomerCounts(ctx context.Context) (total, repeat int, err error)

	// SalesTrend income per day since the given day, ascending; days without income are omitted.
	SalesTrend(ctx context.Context, since time.Time) ([]DailyAmount, error)

	// ExpenseBreakdown expenses grouped by category, largest first. Records without category are skipped.
	ExpenseBreakdown(ctx context.Context) ([]CategoryAmount, error)

	// UpcomingAppointments next appointments from the given day, falling back to the latest past ones.
	UpcomingAppointments(ctx context.Context, from time.Time, limit int) ([]*entity.Appointment, error)
}
