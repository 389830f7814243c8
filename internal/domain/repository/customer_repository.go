package repository

import (
	"context"
	"time"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// CustomerRepository persistence port for Customer.
type CustomerRepository interface {
	CRUDRepository[entity.Customer]
	// ListFollowUpsDue customers whose follow_up_date is the given day and have a phone number.
	ListFollowUpsDue(ctx context.Context, day time.Time) ([]*entity.Customer, error)
}
