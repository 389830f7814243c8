package usecase

import (
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// DeliveryUseCase delivery log CRUD. Deliveries do not move stock.
type DeliveryUseCase struct {
	crud[entity.DeliveryLog, dto.DeliveryRequest, dto.DeliveryResponse]
}

// NewDeliveryUseCase builds the use case.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{crud[entity.DeliveryLog, dto.DeliveryRequest, dto.DeliveryResponse]{
		repo:       repo,
		toEntity:   deliveryFromRequest,
		toResponse: toDeliveryResponse,
		setID:      func(e *entity.DeliveryLog, id int64) { e.ID = id },
	}}
}

func deliveryFromRequest(in dto.DeliveryRequest) (*entity.DeliveryLog, error) {
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	customer, err := required("customer_name", in.CustomerName)
	if err != nil {
		return nil, err
	}
	if err := nonNegativeInt("quantity", in.Quantity); err != nil {
		return nil, err
	}
	if err := nonNegative("delivery_cost", in.DeliveryCost); err != nil {
		return nil, err
	}
	return &entity.DeliveryLog{
		Date:           date,
		CustomerName:   customer,
		Location:       dto.Optional(in.Location),
		ItemDelivered:  dto.Optional(in.ItemDelivered),
		Quantity:       in.Quantity,
		DeliveryPerson: dto.Optional(in.DeliveryPerson),
		DeliveryCost:   in.DeliveryCost,
		Notes:          dto.Optional(in.Notes),
	}, nil
}

func toDeliveryResponse(d *entity.DeliveryLog) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID: d.ID,
		DeliveryRequest: dto.DeliveryRequest{
			Date:           dto.FormatDate(d.Date),
			CustomerName:   d.CustomerName,
			Location:       d.Location,
			ItemDelivered:  d.ItemDelivered,
			Quantity:       d.Quantity,
			DeliveryPerson: d.DeliveryPerson,
			DeliveryCost:   d.DeliveryCost,
			Notes:          d.Notes,
		},
		CreatedAt: d.CreatedAt,
	}
}
