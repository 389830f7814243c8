package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, invoice_number, client_name, amount, status, due_date, services, created_at`

// InvoiceRepo InvoiceRepository over PostgreSQL. Services are stored as TEXT[].
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var i entity.Invoice
	if err := row.Scan(&i.ID, &i.InvoiceNumber, &i.ClientName, &i.Amount, &i.Status, &i.DueDate, &i.Services, &i.CreatedAt); err != nil {
		return nil, err
	}
	if i.Services == nil {
		i.Services = []string{}
	}
	return &i, nil
}

func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return listAll(ctx, r.q, "list invoices", scanInvoice,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC, id DESC`)
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return getOne(ctx, r.q, "get invoice", scanInvoice,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// Create fails with domain.ErrDuplicate when the invoice number is taken.
func (r *InvoiceRepo) Create(ctx context.Context, i *entity.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, client_name, amount, status, due_date, services)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	args := []any{i.InvoiceNumber, i.ClientName, i.Amount, i.Status, i.DueDate, servicesArg(i.Services)}
	return insertReturning(ctx, r.q, "insert invoice", query, args, &i.ID, &i.CreatedAt)
}

func (r *InvoiceRepo) Update(ctx context.Context, i *entity.Invoice) error {
	query := `
		UPDATE invoices SET invoice_number = $2, client_name = $3, amount = $4, status = $5, due_date = $6,
			services = $7
		WHERE id = $1`
	return execOne(ctx, r.q, "update invoice", query,
		i.ID, i.InvoiceNumber, i.ClientName, i.Amount, i.Status, i.DueDate, servicesArg(i.Services))
}

func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete invoice", `DELETE FROM invoices WHERE id = $1`, id)
}

// servicesArg keeps the NOT NULL column happy when there are no services.
func servicesArg(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
