package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, is_admin, is_active, created_at, updated_at`

// UserRepo UserRepository over PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the adapter.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return listAll(ctx, r.q, "list users", scanUser, `SELECT `+userColumns+` FROM users ORDER BY username`)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return getOne(ctx, r.q, "get user", scanUser, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername returns nil when nobody has that username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return getOne(ctx, r.q, "get user by username", scanUser,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// Create fails with domain.ErrUsernameTaken on a duplicate username.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, is_admin, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := insertReturning(ctx, r.q, "insert user", query,
		[]any{u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.IsActive}, &u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err == domain.ErrDuplicate {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	err := execOne(ctx, r.q, "update user",
		`UPDATE users SET username = $2, email = $3, password_hash = $4, is_admin = $5, is_active = $6, updated_at = $7
		 WHERE id = $1`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.IsActive, u.UpdatedAt)
	if err == domain.ErrDuplicate {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete user", `DELETE FROM users WHERE id = $1`, id)
}
