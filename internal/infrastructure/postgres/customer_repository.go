package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, customer_name, phone_number, address, product_purchased, quantity, total_amount,
	purchase_date, payment_status, payment_method, delivery_status, notes, customer_type, channel,
	preferred_product, follow_up_date, created_at, updated_at`

// CustomerRepo CustomerRepository over PostgreSQL (pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or a tx.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.CustomerName, &c.PhoneNumber, &c.Address, &c.ProductPurchased, &c.Quantity, &c.TotalAmount,
		&c.PurchaseDate, &c.PaymentStatus, &c.PaymentMethod, &c.DeliveryStatus, &c.Notes, &c.CustomerType, &c.Channel,
		&c.PreferredProduct, &c.FollowUpDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	return listAll(ctx, r.q, "list customers", scanCustomer,
		`SELECT `+customerColumns+` FROM customers ORDER BY id DESC`)
}

// GetByID returns nil when the customer does not exist.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return getOne(ctx, r.q, "get customer", scanCustomer,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// Create inserts the customer and sets ID and timestamps.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_name, phone_number, address, product_purchased, quantity, total_amount,
			purchase_date, payment_status, payment_method, delivery_status, notes, customer_type, channel,
			preferred_product, follow_up_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`
	args := []any{
		c.CustomerName, c.PhoneNumber, c.Address, c.ProductPurchased, c.Quantity, c.TotalAmount,
		c.PurchaseDate, c.PaymentStatus, c.PaymentMethod, c.DeliveryStatus, c.Notes, c.CustomerType, c.Channel,
		c.PreferredProduct, c.FollowUpDate,
	}
	return insertReturning(ctx, r.q, "insert customer", query, args, &c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update replaces every editable column.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	c.UpdatedAt = time.Now()
	query := `
		UPDATE customers SET customer_name = $2, phone_number = $3, address = $4, product_purchased = $5,
			quantity = $6, total_amount = $7, purchase_date = $8, payment_status = $9, payment_method = $10,
			delivery_status = $11, notes = $12, customer_type = $13, channel = $14, preferred_product = $15,
			follow_up_date = $16, updated_at = $17
		WHERE id = $1`
	return execOne(ctx, r.q, "update customer", query,
		c.ID, c.CustomerName, c.PhoneNumber, c.Address, c.ProductPurchased,
		c.Quantity, c.TotalAmount, c.PurchaseDate, c.PaymentStatus, c.PaymentMethod,
		c.DeliveryStatus, c.Notes, c.CustomerType, c.Channel, c.PreferredProduct,
		c.FollowUpDate, c.UpdatedAt,
	)
}

// Delete removes the customer.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete customer", `DELETE FROM customers WHERE id = $1`, id)
}

// ListFollowUpsDue customers to contact on the given day.
func (r *CustomerRepo) ListFollowUpsDue(ctx context.Context, day time.Time) ([]*entity.Customer, error) {
	return listAll(ctx, r.q, "list follow-ups", scanCustomer,
		`SELECT `+customerColumns+` FROM customers
		 WHERE follow_up_date = $1::date AND phone_number <> ''
		 ORDER BY customer_name`, truncateDay(day))
}
