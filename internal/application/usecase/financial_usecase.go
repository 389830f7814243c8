package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// FinancialUseCase income/expense records, plus booking a sale from a customer
// and the overall summary.
type FinancialUseCase struct {
	crud[entity.FinancialRecord, dto.FinancialRequest, dto.FinancialResponse]
	records   repository.FinancialRepository
	customers repository.CustomerRepository
	analytics repository.AnalyticsRepository
	now       func() time.Time
}

// NewFinancialUseCase builds the use case.
func NewFinancialUseCase(
	records repository.FinancialRepository,
	customers repository.CustomerRepository,
	analytics repository.AnalyticsRepository,
) *FinancialUseCase {
	return &FinancialUseCase{
		crud: crud[entity.FinancialRecord, dto.FinancialRequest, dto.FinancialResponse]{
			repo:       records,
			toEntity:   financialFromRequest,
			toResponse: toFinancialResponse,
			setID:      func(e *entity.FinancialRecord, id int64) { e.ID = id },
		},
		records:   records,
		customers: customers,
		analytics: analytics,
		now:       time.Now,
	}
}

// Create validates the record and the customer it references, then stores it.
func (uc *FinancialUseCase) Create(ctx context.Context, in dto.FinancialRequest) (*dto.FinancialResponse, error) {
	if err := uc.checkCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	return uc.crud.Create(ctx, in)
}

// Update replaces the record; the referenced customer must exist.
func (uc *FinancialUseCase) Update(ctx context.Context, id int64, in dto.FinancialRequest) (*dto.FinancialResponse, error) {
	if err := uc.checkCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	return uc.crud.Update(ctx, id, in)
}

func (uc *FinancialUseCase) checkCustomer(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if *id <= 0 {
		return domain.Invalid("customer_id", "customer not found")
	}
	c, err := uc.customers.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.Invalid("customer_id", "customer not found")
	}
	return nil
}

// CreateFromCustomer books an Income/Sales record from the customer's purchase.
func (uc *FinancialUseCase) CreateFromCustomer(ctx context.Context, customerID int64) (*dto.FinancialResponse, error) {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !c.HasSale() {
		return nil, domain.Invalid("total_amount", "customer has no purchase amount to record")
	}
	date := uc.now()
	if c.PurchaseDate != nil {
		date = *c.PurchaseDate
	}
	y, m, d := date.Date()
	rec := &entity.FinancialRecord{
		Date:            time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		TransactionType: entity.TransactionIncome,
		Description:     strPtr(SaleDescription(c.CustomerName, c.ProductPurchased)),
		Category:        strPtr(entity.CategorySales),
		Amount:          c.TotalAmount,
		PaymentMethod:   c.PaymentMethod,
		Status:          dto.Or(c.PaymentStatus, entity.StatusPending),
		CustomerID:      &c.ID,
	}
	if err := uc.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	resp := toFinancialResponse(rec)
	return &resp, nil
}

// Summary all-time income, expense and net profit.
func (uc *FinancialUseCase) Summary(ctx context.Context) (*dto.FinancialSummaryDTO, error) {
	income, expense, err := uc.analytics.IncomeExpense(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	return &dto.FinancialSummaryDTO{
		TotalIncome:  income.Round(2),
		TotalExpense: expense.Round(2),
		NetProfit:    income.Sub(expense).Round(2),
	}, nil
}

func financialFromRequest(in dto.FinancialRequest) (*entity.FinancialRecord, error) {
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidTransactionType(in.TransactionType) {
		return nil, domain.Invalid("transaction_type", "must be Income or Expense")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "must be greater than zero")
	}
	return &entity.FinancialRecord{
		Date:            date,
		TransactionType: in.TransactionType,
		Description:     dto.Optional(in.Description),
		Category:        dto.Optional(in.Category),
		Amount:          in.Amount,
		PaymentMethod:   dto.Optional(in.PaymentMethod),
		Status:          dto.Or(in.Status, entity.StatusPending),
		Notes:           dto.Optional(in.Notes),
		CustomerID:      in.CustomerID,
	}, nil
}

func toFinancialResponse(f *entity.FinancialRecord) dto.FinancialResponse {
	return dto.FinancialResponse{
		ID: f.ID,
		FinancialRequest: dto.FinancialRequest{
			Date:            dto.FormatDate(f.Date),
			TransactionType: f.TransactionType,
			Description:     f.Description,
			Category:        f.Category,
			Amount:          f.Amount,
			PaymentMethod:   f.PaymentMethod,
			Status:          f.Status,
			Notes:           f.Notes,
			CustomerID:      f.CustomerID,
		},
		CustomerName: f.CustomerName,
		CreatedAt:    f.CreatedAt,
	}
}
