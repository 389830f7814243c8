package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, supplier_name, product_supplied, contact, payment_terms, last_purchase,
	amount_paid, balance, notes, created_at, updated_at`

// SupplierRepo SupplierRepository over PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository builds the adapter.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.SupplierName, &s.ProductSupplied, &s.Contact, &s.PaymentTerms, &s.LastPurchase,
		&s.AmountPaid, &s.Balance, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	return listAll(ctx, r.q, "list suppliers", scanSupplier,
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY supplier_name`)
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return getOne(ctx, r.q, "get supplier", scanSupplier,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_name, product_supplied, contact, payment_terms, last_purchase,
			amount_paid, balance, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	args := []any{s.SupplierName, s.ProductSupplied, s.Contact, s.PaymentTerms, s.LastPurchase,
		s.AmountPaid, s.Balance, s.Notes}
	return insertReturning(ctx, r.q, "insert supplier", query, args, &s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	s.UpdatedAt = time.Now()
	query := `
		UPDATE suppliers SET supplier_name = $2, product_supplied = $3, contact = $4, payment_terms = $5,
			last_purchase = $6, amount_paid = $7, balance = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	return execOne(ctx, r.q, "update supplier", query,
		s.ID, s.SupplierName, s.ProductSupplied, s.Contact, s.PaymentTerms,
		s.LastPurchase, s.AmountPaid, s.Balance, s.Notes, s.UpdatedAt)
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete supplier", `DELETE FROM suppliers WHERE id = $1`, id)
}
