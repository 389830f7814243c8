package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

// customer_name is joined in for display; the record only stores customer_id.
const financialSelect = `
	SELECT f.id, f.date, f.transaction_type, f.description, f.category, f.amount, f.payment_method,
		f.status, f.notes, f.customer_id, c.customer_name, f.created_at, f.updated_at
	FROM financial_records f
	LEFT JOIN customers c ON c.id = f.customer_id`

// FinancialRepo FinancialRepository over PostgreSQL.
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository builds the adapter.
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

func scanFinancialRecord(row pgx.Row) (*entity.FinancialRecord, error) {
	var f entity.FinancialRecord
	err := row.Scan(&f.ID, &f.Date, &f.TransactionType, &f.Description, &f.Category, &f.Amount, &f.PaymentMethod,
		&f.Status, &f.Notes, &f.CustomerID, &f.CustomerName, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FinancialRepo) List(ctx context.Context) ([]*entity.FinancialRecord, error) {
	return listAll(ctx, r.q, "list financial records", scanFinancialRecord,
		financialSelect+` ORDER BY f.date DESC, f.id DESC`)
}

func (r *FinancialRepo) GetByID(ctx context.Context, id int64) (*entity.FinancialRecord, error) {
	return getOne(ctx, r.q, "get financial record", scanFinancialRecord,
		financialSelect+` WHERE f.id = $1`, id)
}

func (r *FinancialRepo) Create(ctx context.Context, f *entity.FinancialRecord) error {
	query := `
		INSERT INTO financial_records (date, transaction_type, description, category, amount, payment_method,
			status, notes, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	args := []any{f.Date, f.TransactionType, f.Description, f.Category, f.Amount, f.PaymentMethod,
		f.Status, f.Notes, f.CustomerID}
	if err := insertReturning(ctx, r.q, "insert financial record", query, args, &f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return err
	}
	return r.fillCustomerName(ctx, f)
}

func (r *FinancialRepo) Update(ctx context.Context, f *entity.FinancialRecord) error {
	f.UpdatedAt = time.Now()
	query := `
		UPDATE financial_records SET date = $2, transaction_type = $3, description = $4, category = $5,
			amount = $6, payment_method = $7, status = $8, notes = $9, customer_id = $10, updated_at = $11
		WHERE id = $1`
	if err := execOne(ctx, r.q, "update financial record", query,
		f.ID, f.Date, f.TransactionType, f.Description, f.Category,
		f.Amount, f.PaymentMethod, f.Status, f.Notes, f.CustomerID, f.UpdatedAt); err != nil {
		return err
	}
	return r.fillCustomerName(ctx, f)
}

func (r *FinancialRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete financial record", `DELETE FROM financial_records WHERE id = $1`, id)
}

// LatestForCustomer newest record linked to the customer.
func (r *FinancialRepo) LatestForCustomer(ctx context.Context, customerID int64) (*entity.FinancialRecord, error) {
	return getOne(ctx, r.q, "latest financial record", scanFinancialRecord,
		financialSelect+` WHERE f.customer_id = $1 ORDER BY f.created_at DESC, f.id DESC LIMIT 1`, customerID)
}

// UnlinkCustomer keeps the records but drops the reference.
func (r *FinancialRepo) UnlinkCustomer(ctx context.Context, customerID int64) error {
	if _, err := r.q.Exec(ctx, `UPDATE financial_records SET customer_id = NULL, updated_at = NOW() WHERE customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("unlink financial records: %w", err)
	}
	return nil
}

func (r *FinancialRepo) fillCustomerName(ctx context.Context, f *entity.FinancialRecord) error {
	f.CustomerName = nil
	if f.CustomerID == nil {
		return nil
	}
	var name string
	err := r.q.QueryRow(ctx, `SELECT customer_name FROM customers WHERE id = $1`, *f.CustomerID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("financial record customer name: %w", err)
	}
	f.CustomerName = &name
	return nil
}
