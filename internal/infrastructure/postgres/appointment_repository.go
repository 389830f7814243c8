package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, client_name, service, date, time, status, notes, created_at`

// AppointmentRepo AppointmentRepository over PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository builds the adapter.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	if err := row.Scan(&a.ID, &a.ClientName, &a.Service, &a.Date, &a.Time, &a.Status, &a.Notes, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	return listAll(ctx, r.q, "list appointments", scanAppointment,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY date, time NULLS LAST, id`)
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	return getOne(ctx, r.q, "get appointment", scanAppointment,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
}

func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (client_name, service, date, time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	args := []any{a.ClientName, a.Service, a.Date, a.Time, a.Status, a.Notes}
	return insertReturning(ctx, r.q, "insert appointment", query, args, &a.ID, &a.CreatedAt)
}

func (r *AppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments SET client_name = $2, service = $3, date = $4, time = $5, status = $6, notes = $7
		WHERE id = $1`
	return execOne(ctx, r.q, "update appointment", query,
		a.ID, a.ClientName, a.Service, a.Date, a.Time, a.Status, a.Notes)
}

func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.q, "delete appointment", `DELETE FROM appointments WHERE id = $1`, id)
}
