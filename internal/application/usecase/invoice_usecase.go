package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// InvoicePDFGenerator renders an invoice as PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice) ([]byte, error)
}

// InvoiceUseCase invoice CRUD and PDF rendering.
type InvoiceUseCase struct {
	crud[entity.Invoice, dto.InvoiceRequest, dto.InvoiceResponse]
	repo repository.InvoiceRepository
	pdf  InvoicePDFGenerator
}

// NewInvoiceUseCase builds the use case. pdf may be nil when PDF rendering is not wired.
func NewInvoiceUseCase(repo repository.InvoiceRepository, pdf InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		crud: crud[entity.Invoice, dto.InvoiceRequest, dto.InvoiceResponse]{
			repo:       repo,
			toEntity:   invoiceFromRequest,
			toResponse: toInvoiceResponse,
			setID:      func(e *entity.Invoice, id int64) { e.ID = id },
		},
		repo: repo,
		pdf:  pdf,
	}
}

// PDF renders the invoice; the file name is derived from the invoice number.
func (uc *InvoiceUseCase) PDF(ctx context.Context, id int64) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.ErrNotFound
	}
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	b, err := uc.pdf.GenerateInvoicePDF(inv)
	if err != nil {
		return nil, "", err
	}
	return b, "invoice-" + inv.InvoiceNumber + ".pdf", nil
}

func invoiceFromRequest(in dto.InvoiceRequest) (*entity.Invoice, error) {
	number, err := required("invoice_number", in.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	client, err := required("client_name", in.ClientName)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("amount", in.Amount); err != nil {
		return nil, err
	}
	status := strings.ToLower(dto.Or(in.Status, entity.InvoicePending))
	if err := oneOf("status", status, entity.InvoiceStatuses); err != nil {
		return nil, err
	}
	due, err := dto.ParseDatePtr("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	services := make([]string, 0, len(in.Services))
	for _, s := range in.Services {
		if s = strings.TrimSpace(s); s != "" {
			services = append(services, s)
		}
	}
	return &entity.Invoice{
		InvoiceNumber: number,
		ClientName:    client,
		Amount:        in.Amount,
		Status:        status,
		DueDate:       due,
		Services:      services,
	}, nil
}

func toInvoiceResponse(i *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID: i.ID,
		InvoiceRequest: dto.InvoiceRequest{
			InvoiceNumber: i.InvoiceNumber,
			ClientName:    i.ClientName,
			Amount:        i.Amount,
			Status:        i.Status,
			DueDate:       dto.FormatDatePtr(i.DueDate),
			Services:      i.Services,
		},
		CreatedAt: i.CreatedAt,
	}
}
