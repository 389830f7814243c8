package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, item_name, category, quantity_in_stock, unit, cost_price, selling_price,
	supplier, restock_level, status, date_added, updated_at`

// InventoryRepo InventoryRepository over PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var i entity.InventoryItem
	err := row.Scan(
		&i.ID, &i.ItemName, &i.Category, &i.QuantityInStock, &i.Unit, &i.CostPrice, &i.SellingPrice,
		&i.Supplier, &i.RestockLevel, &i.Status, &i.DateAdded, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return listAll(ctx, r.q, "list inventory", scanInventoryItem,
		`SELECT `+inventoryColumns+` FROM inventory ORDER BY item_name`)
}

func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return getOne(ctx, r.q, "get inventory item", scanInventoryItem,
		`SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id)
}

// Create stores the item; Status must already be computed by the caller.
func (r *InventoryRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (item_name, category, quantity_in_stock, unit, cost_price, selling_price,
			supplier, restock_level, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date_added, updated_at`
	args := []any{i.ItemName, i.Category, i.QuantityInStock, i.Unit, i.CostPrice, i.SellingPrice,
		i.Supplier, i.RestockLevel, i.Status}
	return insertReturning(ctx, r.q, "insert inventory item", query, args, &i.ID, &i.DateAdded, &i.UpdatedAt)
}

func (r *InventoryRepo) Update(ctx context.Context, i *entity.InventoryItem) error {
	i.UpdatedAt = time.Now()
	query := `
		UPDATE inventory SET item_name = $2, category = $3, quantity_in_stock = $4, unit = $5, cost_price = $6,
			selling_price = $7, supplier = $8, restock_level = $9, status = $10, updated_at = $11
		WHERE id = $1`
	return execOne(ctx, r.q, "update inventory item", query,
		i.ID, i.ItemName, i.Category, i.QuantityInStock, i.Unit, i.CostPrice,
		i.SellingPrice, i.Supplier, i.RestockLevel, i.Status, i.UpdatedAt,
	)
}

func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete inventory item", `DELETE FROM inventory WHERE id = $1`, id)
}

// ListAtOrBelowRestock items to reorder, largest shortfall first.
func (r *InventoryRepo) ListAtOrBelowRestock(ctx context.Context) ([]*entity.InventoryItem, error) {
	return listAll(ctx, r.q, "list restock", scanInventoryItem,
		`SELECT `+inventoryColumns+` FROM inventory
		 WHERE quantity_in_stock <= restock_level
		 ORDER BY (restock_level - quantity_in_stock) DESC, item_name`)
}
