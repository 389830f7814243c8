package repository

import (
	"context"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
)

// UserRepository persistence port for User.
type UserRepository interface {
	CRUDRepository[entity.User]
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
