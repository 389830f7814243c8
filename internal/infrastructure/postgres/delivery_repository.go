package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

const deliveryColumns = `id, date, customer_name, location, item_delivered, quantity, delivery_person,
	delivery_cost, notes, created_at`

// DeliveryRepo DeliveryRepository over PostgreSQL.
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository builds the adapter.
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

func scanDelivery(row pgx.Row) (*entity.DeliveryLog, error) {
	var d entity.DeliveryLog
	err := row.Scan(&d.ID, &d.Date, &d.CustomerName, &d.Location, &d.ItemDelivered, &d.Quantity, &d.DeliveryPerson,
		&d.DeliveryCost, &d.Notes, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepo) List(ctx context.Context) ([]*entity.DeliveryLog, error) {
	return listAll(ctx, r.q, "list deliveries", scanDelivery,
		`SELECT `+deliveryColumns+` FROM delivery_logs ORDER BY date DESC, id DESC`)
}

func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*entity.DeliveryLog, error) {
	return getOne(ctx, r.q, "get delivery", scanDelivery,
		`SELECT `+deliveryColumns+` FROM delivery_logs WHERE id = $1`, id)
}

func (r *DeliveryRepo) Create(ctx context.Context, d *entity.DeliveryLog) error {
	query := `
		INSERT INTO delivery_logs (date, customer_name, location, item_delivered, quantity, delivery_person,
			delivery_cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	args := []any{d.Date, d.CustomerName, d.Location, d.ItemDelivered, d.Quantity, d.DeliveryPerson,
		d.DeliveryCost, d.Notes}
	return insertReturning(ctx, r.q, "insert delivery", query, args, &d.ID, &d.CreatedAt)
}

func (r *DeliveryRepo) Update(ctx context.Context, d *entity.DeliveryLog) error {
	query := `
		UPDATE delivery_logs SET date = $2, customer_name = $3, location = $4, item_delivered = $5,
			quantity = $6, delivery_person = $7, delivery_cost = $8, notes = $9
		WHERE id = $1`
	return execOne(ctx, r.q, "update delivery", query,
		d.ID, d.Date, d.CustomerName, d.Location, d.ItemDelivered,
		d.Quantity, d.DeliveryPerson, d.DeliveryCost, d.Notes)
}

func (r *DeliveryRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete delivery", `DELETE FROM delivery_logs WHERE id = $1`, id)
}
