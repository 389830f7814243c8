package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only dashboard queries.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// IncomeExpense totals by transaction type. COALESCE keeps empty periods at zero.
func (r *AnalyticsRepo) IncomeExpense(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'Income'),  0) AS income,
	    COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'Expense'), 0) AS expense
	FROM financial_records
	WHERE ($1::date IS NULL OR date >= $1::date)
	  AND ($2::date IS NULL OR date <= $2::date)`

	err = r.q.QueryRow(ctx, query, dateArg(from), dateArg(to)).Scan(&income, &expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.IncomeExpense: %w", err)
	}
	return income, expense, nil
}

// CustomerCounts all customers and the repeat ones.
func (r *AnalyticsRepo) CustomerCounts(ctx context.Context) (total, repeat int, err error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE customer_type IN ('Returning', 'Repeat'))
	FROM customers`

	if err := r.q.QueryRow(ctx, query).Scan(&total, &repeat); err != nil {
		return 0, 0, fmt.Errorf("analytics.CustomerCounts: %w", err)
	}
	return total, repeat, nil
}

// SalesTrend income per day.
func (r *AnalyticsRepo) SalesTrend(ctx context.Context, since time.Time) ([]repository.DailyAmount, error) {
	const query = `
	SELECT date, SUM(amount)
	FROM financial_records
	WHERE transaction_type = 'Income' AND date >= $1::date
	GROUP BY date
	ORDER BY date`

	rows, err := r.q.Query(ctx, query, truncateDay(since))
	if err != nil {
		return nil, fmt.Errorf("analytics.SalesTrend: %w", err)
	}
	defer rows.Close()

	out := make([]repository.DailyAmount, 0)
	for rows.Next() {
		var d repository.DailyAmount
		if err := rows.Scan(&d.Day, &d.Amount); err != nil {
			return nil, fmt.Errorf("analytics.SalesTrend scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ExpenseBreakdown expenses per category.
func (r *AnalyticsRepo) ExpenseBreakdown(ctx context.Context) ([]repository.CategoryAmount, error) {
	const query = `
	SELECT category, SUM(amount) AS total
	FROM financial_records
	WHERE transaction_type = 'Expense' AND category IS NOT NULL AND category <> ''
	GROUP BY category
	ORDER BY total DESC, category`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.ExpenseBreakdown: %w", err)
	}
	defer rows.Close()

	out := make([]repository.CategoryAmount, 0)
	for rows.Next() {
		var c repository.CategoryAmount
		if err := rows.Scan(&c.Category, &c.Amount); err != nil {
			return nil, fmt.Errorf("analytics.ExpenseBreakdown scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpcomingAppointments appointments from the given day on, soonest first. When
// there are none ahead, the most recent past ones are returned instead.
func (r *AnalyticsRepo) UpcomingAppointments(ctx context.Context, from time.Time, limit int) ([]*entity.Appointment, error) {
	upcoming, err := listAll(ctx, r.q, "analytics.UpcomingAppointments", scanAppointment,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE date >= $1::date AND status <> 'cancelled'
		 ORDER BY date, time NULLS LAST, id LIMIT $2`, truncateDay(from), limit)
	if err != nil || len(upcoming) > 0 {
		return upcoming, err
	}
	return listAll(ctx, r.q, "analytics.RecentAppointments", scanAppointment,
		`SELECT `+appointmentColumns+` FROM appointments
		 ORDER BY date DESC, time DESC NULLS LAST, id DESC LIMIT $1`, limit)
}

// dateArg maps the zero time to NULL (open bound).
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return truncateDay(t)
}

// truncateDay midnight UTC of t's calendar day, as the DATE codec expects.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
