package usecase

import (
	"context"

	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// CustomerTxRunner runs fn inside one database transaction with customer and
// financial repositories bound to it.
type CustomerTxRunner interface {
	RunCustomerSync(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		records repository.FinancialRepository,
	) error) error
}
