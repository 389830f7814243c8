package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/progarden-crm/internal/domain"
)

// Querier what the repositories need from a *pgxpool.Pool or a pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation reports whether err is a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// fkDetail matches the key column in a foreign key violation detail, e.g.
// `Key (customer_id)=(9) is not present in table "customers".`
var fkDetail = regexp.MustCompile(`^Key \(([a-z_]+)\)=`)

// writeFailure maps constraint violations of an INSERT/UPDATE to domain errors.
// A dangling reference (23503) becomes a validation error on the key column.
func writeFailure(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		field := ""
		if m := fkDetail.FindStringSubmatch(pgErr.Detail); m != nil {
			field = m[1]
		}
		return domain.Invalid(field, "references a record that does not exist")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, q Querier, op, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return writeFailure(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// getOne runs a single-row query; a missing row yields (nil, nil).
func getOne[T any](ctx context.Context, q Querier, op string, scan func(pgx.Row) (*T, error), sql string, args ...any) (*T, error) {
	v, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// listAll runs a query and scans every row.
func listAll[T any](ctx context.Context, q Querier, op string, scan func(pgx.Row) (*T, error), sql string, args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// insertReturning runs an INSERT ... RETURNING and maps constraint violations.
func insertReturning(ctx context.Context, q Querier, op, sql string, args []any, dest ...any) error {
	if err := q.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		return writeFailure(op, err)
	}
	return nil
}
