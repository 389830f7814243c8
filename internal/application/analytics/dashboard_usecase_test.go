package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	mu          sync.Mutex
	ranges      [][2]time.Time
	trendSince  time.Time
	apptFrom    time.Time
	apptLimit   int
	customerErr error
}

func (f *fakeAnalyticsRepo) IncomeExpense(_ context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, [2]time.Time{from, to})
	f.mu.Unlock()
	if from.IsZero() {
		return decimal.RequireFromString("125000.5"), decimal.RequireFromString("40000.25"), nil
	}
	return decimal.NewFromInt(9000), decimal.NewFromInt(1500), nil
}

func (f *fakeAnalyticsRepo) CustomerCounts(context.Context) (int, int, error) {
	if f.customerErr != nil {
		return 0, 0, f.customerErr
	}
	return 12, 4, nil
}

func (f *fakeAnalyticsRepo) SalesTrend(_ context.Context, since time.Time) ([]repository.DailyAmount, error) {
	f.trendSince = since
	return []repository.DailyAmount{
		{Day: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(4500)},
		{Day: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("1200.555")},
	}, nil
}

func (f *fakeAnalyticsRepo) ExpenseBreakdown(context.Context) ([]repository.CategoryAmount, error) {
	return []repository.CategoryAmount{{Category: "Fuel", Amount: decimal.NewFromInt(800)}}, nil
}

func (f *fakeAnalyticsRepo) UpcomingAppointments(_ context.Context, from time.Time, limit int) ([]*entity.Appointment, error) {
	f.apptFrom, f.apptLimit = from, limit
	return []*entity.Appointment{
		{ID: 3, ClientName: "Musa", Service: "Lawn care", Date: from, Status: entity.AppointmentScheduled},
	}, nil
}

func fixedNow() time.Time { return time.Date(2026, 3, 10, 15, 4, 0, 0, time.UTC) }

func TestStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "125000.5", out.TotalSales.String())
	assert.Equal(t, "40000.25", out.TotalExpenses.String())
	assert.Equal(t, "85000.25", out.NetProfit.String())
	assert.Equal(t, 12, out.TotalCustomers)
	assert.Equal(t, 4, out.RepeatCustomers)
	assert.Equal(t, "9000", out.MonthlyIncome.String())
	assert.Equal(t, "1500", out.MonthlyExpenses.String())
	assert.Equal(t, "March 2026", out.MonthLabel)

	require.Len(t, repo.ranges, 2)
	for _, r := range repo.ranges {
		if r[0].IsZero() {
			continue
		}
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r[0])
		assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), r[1])
	}
}

func TestStats_PropagatesErrors(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{customerErr: errors.New("db down")})
	_, err := uc.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestSalesTrend_Window(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.SalesTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), repo.trendSince, "30 days including today")
	require.Len(t, out, 2)
	assert.Equal(t, "2026-03-09", out[0].Date)
	assert.Equal(t, "1200.56", out[1].Amount.String())

	_, err = uc.SalesTrend(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), repo.trendSince)
}

func TestRecentAppointments(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.RecentAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, repo.apptLimit)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), repo.apptFrom)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-03-10", out[0].Date)
}

func TestExpenseBreakdown(t *testing.T) {
	out, err := NewDashboardUseCase(&fakeAnalyticsRepo{}).ExpenseBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fuel", out[0].Category)
}
