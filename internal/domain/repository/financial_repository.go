package repository

import (
	"context"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// FinancialRepository persistence port for FinancialRecord.
type FinancialRepository interface {
	CRUDRepository[entity.FinancialRecord]
	// LatestForCustomer most recent record linked to the customer, or nil.
	LatestForCustomer(ctx context.Context, customerID int64) (*entity.FinancialRecord, error)
	// UnlinkCustomer clears customer_id on every record of the customer.
	UnlinkCustomer(ctx context.Context, customerID int64) error
}
