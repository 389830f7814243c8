package repository

import "context"

// CRUDRepository persistence port shared by every flat resource.
// GetByID returns (nil, nil) when the row does not exist; Update and Delete
// return domain.ErrNotFound in that case.
type CRUDRepository[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, v *T) error // sets the generated ID
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id int64) error
}
