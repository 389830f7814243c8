package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ──────────────────────────────────────────────────────────────────────────────

type memRepo[T any] struct {
	mu    sync.Mutex
	rows  map[int64]*T
	next  int64
	id    func(*T) int64
	setID func(*T, int64)
}

func newMemRepo[T any](id func(*T) int64, setID func(*T, int64)) *memRepo[T] {
	return &memRepo[T]{rows: map[int64]*T{}, id: id, setID: setID}
}

func (m *memRepo[T]) List(_ context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		c := *m.rows[id]
		out = append(out, &c)
	}
	return out, nil
}

func (m *memRepo[T]) GetByID(_ context.Context, id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	c := *v
	return &c, nil
}

func (m *memRepo[T]) Create(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.setID(v, m.next)
	c := *v
	m.rows[m.next] = &c
	return nil
}

func (m *memRepo[T]) Update(_ context.Context, v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id(v)
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	c := *v
	m.rows[id] = &c
	return nil
}

func (m *memRepo[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memCustomers struct {
	*memRepo[entity.Customer]
}

func newMemCustomers() *memCustomers {
	return &memCustomers{newMemRepo(
		func(c *entity.Customer) int64 { return c.ID },
		func(c *entity.Customer, id int64) { c.ID = id; c.CreatedAt = time.Now() },
	)}
}

func (m *memCustomers) ListFollowUpsDue(ctx context.Context, day time.Time) ([]*entity.Customer, error) {
	all, _ := m.List(ctx)
	var out []*entity.Customer
	for _, c := range all {
		if c.FollowUpDate != nil && c.FollowUpDate.Format("2006-01-02") == day.Format("2006-01-02") {
			out = append(out, c)
		}
	}
	return out, nil
}

type memFinancial struct {
	*memRepo[entity.FinancialRecord]
}

func newMemFinancial() *memFinancial {
	return &memFinancial{newMemRepo(
		func(f *entity.FinancialRecord) int64 { return f.ID },
		func(f *entity.FinancialRecord, id int64) { f.ID = id },
	)}
}

func (m *memFinancial) LatestForCustomer(ctx context.Context, customerID int64) (*entity.FinancialRecord, error) {
	all, _ := m.List(ctx)
	var latest *entity.FinancialRecord
	for _, f := range all {
		if f.CustomerID != nil && *f.CustomerID == customerID {
			latest = f
		}
	}
	return latest, nil
}

func (m *memFinancial) UnlinkCustomer(_ context.Context, customerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.rows {
		if f.CustomerID != nil && *f.CustomerID == customerID {
			f.CustomerID = nil
		}
	}
	return nil
}

// linked records of a customer, in id order.
func (m *memFinancial) linked(customerID int64) []*entity.FinancialRecord {
	all, _ := m.List(context.Background())
	var out []*entity.FinancialRecord
	for _, f := range all {
		if f.CustomerID != nil && *f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	return out
}

// fakeTx runs the callback against the in-memory repos (no rollback).
type fakeTx struct {
	customers *memCustomers
	records   *memFinancial
	calls     int
}

func (f *fakeTx) RunCustomerSync(_ context.Context, fn func(
	customers repository.CustomerRepository,
	records repository.FinancialRepository,
) error) error {
	f.calls++
	return fn(f.customers, f.records)
}

type fakeAnalytics struct {
	income, expense decimal.Decimal
}

func (f *fakeAnalytics) IncomeExpense(context.Context, time.Time, time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return f.income, f.expense, nil
}

func (f *fakeAnalytics) CustomerCounts(context.Context) (int, int, error) { return 0, 0, nil }

func (f *fakeAnalytics) SalesTrend(context.Context, time.Time) ([]repository.DailyAmount, error) {
	return nil, nil
}

func (f *fakeAnalytics) ExpenseBreakdown(context.Context) ([]repository.CategoryAmount, error) {
	return nil, nil
}

func (f *fakeAnalytics) UpcomingAppointments(context.Context, time.Time, int) ([]*entity.Appointment, error) {
	return nil, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func sp(s string) *string          { return &s }
