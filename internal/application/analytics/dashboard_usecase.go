// Package analytics holds the dashboard use cases: overall stats, sales trend,
// expense breakdown and the appointments widget.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

const (
	// DefaultTrendDays window of the sales trend when none is given.
	DefaultTrendDays = 30
	// MaxTrendDays upper bound accepted for the window.
	MaxTrendDays = 365

	recentAppointments = 5
)

// DashboardUseCase builds the dashboard widgets from AnalyticsRepository
// (read-only queries); it never touches the resource tables directly.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// Stats runs three independent queries concurrently:
//  1. IncomeExpense(all time)     -> TotalSales, TotalExpenses, NetProfit
//  2. IncomeExpense(this month)   -> MonthlyIncome, MonthlyExpenses
//  3. CustomerCounts              -> TotalCustomers, RepeatCustomers
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var (
		income, expense                 decimal.Decimal
		monthIncome, monthExpense       decimal.Decimal
		totalCustomers, repeatCustomers int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, expense, err = uc.analyticsRepo.IncomeExpense(gctx, time.Time{}, time.Time{})
		if err != nil {
			return fmt.Errorf("dashboard: totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		monthIncome, monthExpense, err = uc.analyticsRepo.IncomeExpense(gctx, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("dashboard: month totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalCustomers, repeatCustomers, err = uc.analyticsRepo.CustomerCounts(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: customers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		TotalSales:      income.Round(2),
		TotalExpenses:   expense.Round(2),
		NetProfit:       income.Sub(expense).Round(2),
		TotalCustomers:  totalCustomers,
		RepeatCustomers: repeatCustomers,
		MonthlyIncome:   monthIncome.Round(2),
		MonthlyExpenses: monthExpense.Round(2),
		MonthLabel:      monthLabel(now),
	}, nil
}

// SalesTrend income per day over the last `days` days (today included).
// days <= 0 means DefaultTrendDays; larger than MaxTrendDays is clamped.
func (uc *DashboardUseCase) SalesTrend(ctx context.Context, days int) ([]dto.SalesTrendPointDTO, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}
	now := uc.now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	rows, err := uc.analyticsRepo.SalesTrend(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard: sales trend: %w", err)
	}
	out := make([]dto.SalesTrendPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesTrendPointDTO{Date: dto.FormatDate(r.Day), Amount: r.Amount.Round(2)})
	}
	return out, nil
}

// ExpenseBreakdown expenses per category, largest first.
func (uc *DashboardUseCase) ExpenseBreakdown(ctx context.Context) ([]dto.ExpenseCategoryDTO, error) {
	rows, err := uc.analyticsRepo.ExpenseBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: expense breakdown: %w", err)
	}
	out := make([]dto.ExpenseCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExpenseCategoryDTO{Category: r.Category, Amount: r.Amount.Round(2)})
	}
	return out, nil
}

// RecentAppointments the next five appointments from today, or the latest past
// ones when nothing is upcoming.
func (uc *DashboardUseCase) RecentAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := uc.analyticsRepo.UpcomingAppointments(ctx, today, recentAppointments)
	if err != nil {
		return nil, fmt.Errorf("dashboard: appointments: %w", err)
	}
	out := make([]dto.AppointmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, usecase.ToAppointmentResponse(a))
	}
	return out, nil
}

// monthLabel readable month, e.g. "March 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}
