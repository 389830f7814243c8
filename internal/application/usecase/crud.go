package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// crud list/get/create/update/delete shared by the flat resources. Each resource
// supplies the request -> entity mapping (where validation happens) and the
// entity -> response mapping.
type crud[E, Req, Resp any] struct {
	repo       repository.CRUDRepository[E]
	toEntity   func(in Req) (*E, error)
	toResponse func(e *E) Resp
	setID      func(e *E, id int64)
}

// List every record.
func (uc *crud[E, Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Resp, 0, len(list))
	for _, e := range list {
		out = append(out, uc.toResponse(e))
	}
	return out, nil
}

// Get one record; domain.ErrNotFound when missing.
func (uc *crud[E, Req, Resp]) Get(ctx context.Context, id int64) (*Resp, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// Create validates and stores a new record.
func (uc *crud[E, Req, Resp]) Create(ctx context.Context, in Req) (*Resp, error) {
	e, err := uc.toEntity(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// Update replaces the record with id. The stored row is read back so server-set
// columns (created_at, joined names) are current.
func (uc *crud[E, Req, Resp]) Update(ctx context.Context, id int64, in Req) (*Resp, error) {
	e, err := uc.toEntity(in)
	if err != nil {
		return nil, err
	}
	uc.setID(e, id)
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete removes the record; domain.ErrNotFound when missing.
func (uc *crud[E, Req, Resp]) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", domain.Required(field)
	}
	return v, nil
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return domain.Invalid(field, "must not be negative")
	}
	return nil
}

func nonNegativeInt(field string, n int) error {
	if n < 0 {
		return domain.Invalid(field, "must not be negative")
	}
	return nil
}

func oneOf(field, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return domain.Invalid(field, "must be one of "+strings.Join(allowed, ", "))
}
