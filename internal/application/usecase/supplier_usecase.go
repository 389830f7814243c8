package usecase

import (
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// SupplierUseCase supplier CRUD.
type SupplierUseCase struct {
	crud[entity.Supplier, dto.SupplierRequest, dto.SupplierResponse]
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{crud[entity.Supplier, dto.SupplierRequest, dto.SupplierResponse]{
		repo:       repo,
		toEntity:   supplierFromRequest,
		toResponse: toSupplierResponse,
		setID:      func(e *entity.Supplier, id int64) { e.ID = id },
	}}
}

func supplierFromRequest(in dto.SupplierRequest) (*entity.Supplier, error) {
	name, err := required("supplier_name", in.SupplierName)
	if err != nil {
		return nil, err
	}
	lastPurchase, err := dto.ParseDatePtr("last_purchase", in.LastPurchase)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("amount_paid", in.AmountPaid); err != nil {
		return nil, err
	}
	return &entity.Supplier{
		SupplierName:    name,
		ProductSupplied: dto.Optional(in.ProductSupplied),
		Contact:         dto.Optional(in.Contact),
		PaymentTerms:    dto.Optional(in.PaymentTerms),
		LastPurchase:    lastPurchase,
		AmountPaid:      in.AmountPaid,
		Balance:         in.Balance,
		Notes:           dto.Optional(in.Notes),
	}, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID: s.ID,
		SupplierRequest: dto.SupplierRequest{
			SupplierName:    s.SupplierName,
			ProductSupplied: s.ProductSupplied,
			Contact:         s.Contact,
			PaymentTerms:    s.PaymentTerms,
			LastPurchase:    dto.FormatDatePtr(s.LastPurchase),
			AmountPaid:      s.AmountPaid,
			Balance:         s.Balance,
			Notes:           s.Notes,
		},
		CreatedAt: s.CreatedAt,
	}
}
