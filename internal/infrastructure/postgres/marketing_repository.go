package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.MarketingRepository = (*MarketingRepo)(nil)

const marketingColumns = `id, platform, post_date, content_type, description, engagement, sales_from_post, notes, created_at`

// MarketingRepo MarketingRepository over PostgreSQL (table marketing_tracker).
type MarketingRepo struct {
	q Querier
}

// NewMarketingRepository builds the adapter.
func NewMarketingRepository(q Querier) *MarketingRepo {
	return &MarketingRepo{q: q}
}

func scanMarketingPost(row pgx.Row) (*entity.MarketingPost, error) {
	var m entity.MarketingPost
	err := row.Scan(&m.ID, &m.Platform, &m.PostDate, &m.ContentType, &m.Description, &m.Engagement,
		&m.SalesFromPost, &m.Notes, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MarketingRepo) List(ctx context.Context) ([]*entity.MarketingPost, error) {
	return listAll(ctx, r.q, "list marketing posts", scanMarketingPost,
		`SELECT `+marketingColumns+` FROM marketing_tracker ORDER BY post_date DESC NULLS LAST, id DESC`)
}

func (r *MarketingRepo) GetByID(ctx context.Context, id int64) (*entity.MarketingPost, error) {
	return getOne(ctx, r.q, "get marketing post", scanMarketingPost,
		`SELECT `+marketingColumns+` FROM marketing_tracker WHERE id = $1`, id)
}

func (r *MarketingRepo) Create(ctx context.Context, m *entity.MarketingPost) error {
	query := `
		INSERT INTO marketing_tracker (platform, post_date, content_type, description, engagement, sales_from_post, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	args := []any{m.Platform, m.PostDate, m.ContentType, m.Description, m.Engagement, m.SalesFromPost, m.Notes}
	return insertReturning(ctx, r.q, "insert marketing post", query, args, &m.ID, &m.CreatedAt)
}

func (r *MarketingRepo) Update(ctx context.Context, m *entity.MarketingPost) error {
	query := `
		UPDATE marketing_tracker SET platform = $2, post_date = $3, content_type = $4, description = $5,
			engagement = $6, sales_from_post = $7, notes = $8
		WHERE id = $1`
	return execOne(ctx, r.q, "update marketing post", query,
		m.ID, m.Platform, m.PostDate, m.ContentType, m.Description, m.Engagement, m.SalesFromPost, m.Notes)
}

func (r *MarketingRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete marketing post", `DELETE FROM marketing_tracker WHERE id = $1`, id)
}
