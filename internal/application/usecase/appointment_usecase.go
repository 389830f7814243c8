package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// AppointmentUseCase appointment CRUD.
type AppointmentUseCase struct {
	crud[entity.Appointment, dto.AppointmentRequest, dto.AppointmentResponse]
}

// NewAppointmentUseCase builds the use case.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{crud[entity.Appointment, dto.AppointmentRequest, dto.AppointmentResponse]{
		repo:       repo,
		toEntity:   appointmentFromRequest,
		toResponse: ToAppointmentResponse,
		setID:      func(e *entity.Appointment, id int64) { e.ID = id },
	}}
}

func appointmentFromRequest(in dto.AppointmentRequest) (*entity.Appointment, error) {
	client, err := required("client_name", in.ClientName)
	if err != nil {
		return nil, err
	}
	service, err := required("service", in.Service)
	if err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	at := dto.Optional(in.Time)
	if at != nil {
		if _, err := time.Parse("15:04", *at); err != nil {
			return nil, domain.Invalid("time", "must be HH:MM")
		}
	}
	status := strings.ToLower(dto.Or(in.Status, entity.AppointmentScheduled))
	if err := oneOf("status", status, entity.AppointmentStatuses); err != nil {
		return nil, err
	}
	return &entity.Appointment{
		ClientName: client,
		Service:    service,
		Date:       date,
		Time:       at,
		Status:     status,
		Notes:      dto.Optional(in.Notes),
	}, nil
}

// ToAppointmentResponse maps a stored appointment to its wire shape.
func ToAppointmentResponse(a *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID: a.ID,
		AppointmentRequest: dto.AppointmentRequest{
			ClientName: a.ClientName,
			Service:    a.Service,
			Date:       dto.FormatDate(a.Date),
			Time:       a.Time,
			Status:     a.Status,
			Notes:      a.Notes,
		},
		CreatedAt: a.CreatedAt,
	}
}
