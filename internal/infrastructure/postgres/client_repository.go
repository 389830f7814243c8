package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, email, phone, address, status, created_at`

// ClientRepo ClientRepository over PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Status, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return listAll(ctx, r.q, "list clients", scanClient,
		`SELECT `+clientColumns+` FROM clients ORDER BY name`)
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return getOne(ctx, r.q, "get client", scanClient,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (name, email, phone, address, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	args := []any{c.Name, c.Email, c.Phone, c.Address, c.Status}
	return insertReturning(ctx, r.q, "insert client", query, args, &c.ID, &c.CreatedAt)
}

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	return execOne(ctx, r.q, "update client",
		`UPDATE clients SET name = $2, email = $3, phone = $4, address = $5, status = $6 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Status)
}

func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete client", `DELETE FROM clients WHERE id = $1`, id)
}
