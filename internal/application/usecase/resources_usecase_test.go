package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Inventory
// ──────────────────────────────────────────────────────────────────────────────

type memInventory struct {
	*memRepo[entity.InventoryItem]
}

func (m *memInventory) ListAtOrBelowRestock(ctx context.Context) ([]*entity.InventoryItem, error) {
	all, _ := m.List(ctx)
	var out []*entity.InventoryItem
	for _, i := range all {
		if i.QuantityInStock <= i.RestockLevel {
			out = append(out, i)
		}
	}
	return out, nil
}

func newMemInventory() *memInventory {
	return &memInventory{newMemRepo(
		func(i *entity.InventoryItem) int64 { return i.ID },
		func(i *entity.InventoryItem, id int64) { i.ID = id },
	)}
}

func TestInventory_StatusIsComputedNotTaken(t *testing.T) {
	uc := NewInventoryUseCase(newMemInventory())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.InventoryRequest{
		ItemName:        "Fertilizer 50kg",
		QuantityInStock: 3,
		CostPrice:       dec("12000"),
		SellingPrice:    dec("15000"),
		Status:          sp(entity.StockInStock),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRestockLevel, out.RestockLevel)
	assert.Equal(t, entity.StockLowStock, out.Status, "client-supplied status is ignored")

	restock := 2
	updated, err := uc.Update(ctx, out.ID, dto.InventoryRequest{
		ItemName:        "Fertilizer 50kg",
		QuantityInStock: 0,
		CostPrice:       dec("12000"),
		SellingPrice:    dec("15000"),
		RestockLevel:    &restock,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockOutOfStock, updated.Status)
}

func TestInventory_RejectsNegativeQuantity(t *testing.T) {
	uc := NewInventoryUseCase(newMemInventory())
	_, err := uc.Create(context.Background(), dto.InventoryRequest{ItemName: "Hose", QuantityInStock: -1})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "quantity_in_stock", ve.Field)
}

func TestCRUD_GetAndDeleteMissing(t *testing.T) {
	uc := NewInventoryUseCase(newMemInventory())
	ctx := context.Background()

	_, err := uc.Get(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, 42), domain.ErrNotFound)
	_, err = uc.Update(ctx, 42, dto.InventoryRequest{ItemName: "Rake"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Financial
// ──────────────────────────────────────────────────────────────────────────────

func TestFinancial_Validation(t *testing.T) {
	uc := NewFinancialUseCase(newMemFinancial(), newMemCustomers(), &fakeAnalytics{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.FinancialRequest{Date: "2026-03-01", TransactionType: "Refund", Amount: dec("10")})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "transaction_type", ve.Field)

	_, err = uc.Create(ctx, dto.FinancialRequest{Date: "2026-03-01", TransactionType: "Expense", Amount: dec("0")})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "amount", ve.Field)

	out, err := uc.Create(ctx, dto.FinancialRequest{Date: "2026-03-01", TransactionType: "Expense", Amount: dec("800"), Category: sp(" ")})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Nil(t, out.Category, "blank optional strings are stored as null")
}

func TestFinancial_CreateFromCustomer(t *testing.T) {
	customers := newMemCustomers()
	records := newMemFinancial()
	uc := NewFinancialUseCase(records, customers, &fakeAnalytics{})
	ctx := context.Background()

	purchase := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	c := &entity.Customer{CustomerName: "Ada Obi", PhoneNumber: "0801", TotalAmount: dec("4500"),
		PurchaseDate: &purchase, PaymentMethod: sp("Transfer"), PaymentStatus: "Paid"}
	require.NoError(t, customers.Create(ctx, c))

	out, err := uc.CreateFromCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", out.Date)
	assert.Equal(t, "Income", out.TransactionType)
	assert.Equal(t, "Paid", out.Status)
	assert.Equal(t, "Transfer", *out.PaymentMethod)
	assert.Equal(t, c.ID, *out.CustomerID)

	_, err = uc.CreateFromCustomer(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinancial_RejectsUnknownCustomer(t *testing.T) {
	customers := newMemCustomers()
	records := newMemFinancial()
	uc := NewFinancialUseCase(records, customers, &fakeAnalytics{})
	ctx := context.Background()

	missing := int64(9999)
	_, err := uc.Create(ctx, dto.FinancialRequest{Date: "2024-01-02", TransactionType: "Income", Amount: dec("10"), CustomerID: &missing})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "customer_id", ve.Field)

	zero := int64(0)
	_, err = uc.Create(ctx, dto.FinancialRequest{Date: "2024-01-02", TransactionType: "Income", Amount: dec("10"), CustomerID: &zero})
	require.ErrorAs(t, err, &ve)

	all, _ := records.List(ctx)
	assert.Empty(t, all, "nothing stored for a dangling reference")

	c := &entity.Customer{CustomerName: "Ada Obi", PhoneNumber: "0801"}
	require.NoError(t, customers.Create(ctx, c))
	out, err := uc.Create(ctx, dto.FinancialRequest{Date: "2024-01-02", TransactionType: "Income", Amount: dec("10"), CustomerID: &c.ID})
	require.NoError(t, err)

	_, err = uc.Update(ctx, out.ID, dto.FinancialRequest{Date: "2024-01-03", TransactionType: "Income", Amount: dec("12"), CustomerID: &missing})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "customer_id", ve.Field)

	got, err := uc.Get(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", got.Date, "rejected update leaves the record as it was")
}

func TestFinancial_Summary(t *testing.T) {
	uc := NewFinancialUseCase(newMemFinancial(), newMemCustomers(), &fakeAnalytics{income: dec("10000.456"), expense: dec("2500")})
	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10000.46", out.TotalIncome.StringFixed(2))
	assert.Equal(t, "7500.46", out.NetProfit.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Appointments, clients, invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointment_StatusAndTime(t *testing.T) {
	repo := newMemRepo(func(a *entity.Appointment) int64 { return a.ID }, func(a *entity.Appointment, id int64) { a.ID = id })
	uc := NewAppointmentUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.AppointmentRequest{ClientName: "Musa", Service: "Lawn care", Date: "2026-03-12", Time: sp("09:30")})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, out.Status)

	_, err = uc.Create(ctx, dto.AppointmentRequest{ClientName: "Musa", Service: "Lawn care", Date: "2026-03-12", Status: "done"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.AppointmentRequest{ClientName: "Musa", Service: "Lawn care", Date: "2026-03-12", Time: sp("9am")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_EmailValidation(t *testing.T) {
	repo := newMemRepo(func(c *entity.Client) int64 { return c.ID }, func(c *entity.Client, id int64) { c.ID = id })
	uc := NewClientUseCase(repo)

	_, err := uc.Create(context.Background(), dto.ClientRequest{Name: "Chika", Email: sp("not-an-email")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(context.Background(), dto.ClientRequest{Name: "Chika", Email: sp("chika@example.com"), Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientActive, out.Status)
}

type stubPDF struct{ called bool }

func (s *stubPDF) GenerateInvoicePDF(*entity.Invoice) ([]byte, error) {
	s.called = true
	return []byte("%PDF-1.4"), nil
}

func TestInvoice_ServicesTrimmedAndPDF(t *testing.T) {
	repo := newMemRepo(func(i *entity.Invoice) int64 { return i.ID }, func(i *entity.Invoice, id int64) { i.ID = id })
	pdf := &stubPDF{}
	uc := NewInvoiceUseCase(repo, pdf)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.InvoiceRequest{
		InvoiceNumber: "INV-001", ClientName: "Chika", Amount: dec("25000"),
		Services: []string{" Pruning ", "", "Lawn care"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pruning", "Lawn care"}, out.Services)
	assert.Equal(t, entity.InvoicePending, out.Status)

	b, name, err := uc.PDF(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, pdf.called)
	assert.Equal(t, "invoice-INV-001.pdf", name)
	assert.NotEmpty(t, b)

	_, _, err = uc.PDF(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	*memRepo[entity.User]
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	all, _ := m.List(ctx)
	for _, u := range all {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func TestUser_PasswordHandling(t *testing.T) {
	users := &memUsers{newMemRepo(func(u *entity.User) int64 { return u.ID }, func(u *entity.User, id int64) { u.ID = id })}
	uc := NewUserUseCase(users)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.UserRequest{Username: "ops", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(ctx, dto.UserRequest{Username: "ops", Password: "garden-secret"})
	require.NoError(t, err)
	assert.True(t, out.IsActive)

	stored, _ := users.GetByID(ctx, out.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("garden-secret")))

	// empty password keeps the hash
	_, err = uc.Update(ctx, out.ID, dto.UserRequest{Username: "ops", IsAdmin: true})
	require.NoError(t, err)
	again, _ := users.GetByID(ctx, out.ID)
	assert.Equal(t, stored.PasswordHash, again.PasswordHash)
	assert.True(t, again.IsAdmin)
}
