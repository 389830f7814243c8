package usecase

import (
	"net/mail"
	"strings"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// ClientUseCase service client CRUD.
type ClientUseCase struct {
	crud[entity.Client, dto.ClientRequest, dto.ClientResponse]
}

// NewClientUseCase builds the use case.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{crud[entity.Client, dto.ClientRequest, dto.ClientResponse]{
		repo:       repo,
		toEntity:   clientFromRequest,
		toResponse: toClientResponse,
		setID:      func(e *entity.Client, id int64) { e.ID = id },
	}}
}

func clientFromRequest(in dto.ClientRequest) (*entity.Client, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	email := dto.Optional(in.Email)
	if email != nil {
		if _, err := mail.ParseAddress(*email); err != nil {
			return nil, domain.Invalid("email", "is not a valid address")
		}
	}
	status := strings.ToLower(dto.Or(in.Status, entity.ClientActive))
	if err := oneOf("status", status, []string{entity.ClientActive, entity.ClientInactive}); err != nil {
		return nil, err
	}
	return &entity.Client{
		Name:    name,
		Email:   email,
		Phone:   dto.Optional(in.Phone),
		Address: dto.Optional(in.Address),
		Status:  status,
	}, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID: c.ID,
		ClientRequest: dto.ClientRequest{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Address: c.Address,
			Status:  c.Status,
		},
		CreatedAt: c.CreatedAt,
	}
}
