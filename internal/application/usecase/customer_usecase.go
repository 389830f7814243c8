package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// CustomerUseCase customer CRUD. Every write keeps the customer's income record in
// step with the purchase, inside one transaction:
//   - create with total_amount > 0 books an Income/Sales record;
//   - update rewrites the latest linked record (or books one when the amount turns positive);
//   - delete unlinks the customer's records and keeps them.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   CustomerTxRunner
	now  func() time.Time
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository, tx CustomerTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx, now: time.Now}
}

// List every customer, newest first.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Get one customer.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Create stores the customer and, for a sale, its income record.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := customerFromRequest(in)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunCustomerSync(ctx, func(customers repository.CustomerRepository, records repository.FinancialRepository) error {
		if err := customers.Create(ctx, customer); err != nil {
			return err
		}
		if !customer.HasSale() {
			return nil
		}
		return records.Create(ctx, uc.saleRecord(customer, nil))
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update replaces the customer and syncs the latest linked income record.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := customerFromRequest(in)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	err = uc.tx.RunCustomerSync(ctx, func(customers repository.CustomerRepository, records repository.FinancialRepository) error {
		existing, err := customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		customer.CreatedAt = existing.CreatedAt
		if err := customers.Update(ctx, customer); err != nil {
			return err
		}

		latest, err := records.LatestForCustomer(ctx, id)
		if err != nil {
			return err
		}
		switch {
		case latest != nil:
			return records.Update(ctx, uc.saleRecord(customer, latest))
		case customer.HasSale():
			return records.Create(ctx, uc.saleRecord(customer, nil))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete removes the customer; its financial records survive without the link.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.RunCustomerSync(ctx, func(customers repository.CustomerRepository, records repository.FinancialRepository) error {
		if err := records.UnlinkCustomer(ctx, id); err != nil {
			return err
		}
		return customers.Delete(ctx, id)
	})
}

// saleRecord builds (or refreshes, when base is set) the income record of a purchase.
func (uc *CustomerUseCase) saleRecord(c *entity.Customer, base *entity.FinancialRecord) *entity.FinancialRecord {
	rec := base
	if rec == nil {
		rec = &entity.FinancialRecord{
			TransactionType: entity.TransactionIncome,
			Status:          entity.StatusPending,
		}
	}
	date := uc.now()
	if c.PurchaseDate != nil {
		date = *c.PurchaseDate
	}
	y, m, d := date.Date()
	rec.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	rec.Description = strPtr(SaleDescription(c.CustomerName, c.ProductPurchased))
	rec.Category = strPtr(entity.CategorySales)
	rec.Amount = c.TotalAmount
	rec.PaymentMethod = c.PaymentMethod
	if c.PaymentStatus != "" {
		rec.Status = c.PaymentStatus
	}
	id := c.ID
	rec.CustomerID = &id
	return rec
}

// SaleDescription "Sale to <name> - <product>", with "Product" when none was recorded.
func SaleDescription(customerName string, product *string) string {
	p := "Product"
	if product != nil && *product != "" {
		p = *product
	}
	return fmt.Sprintf("Sale to %s - %s", customerName, p)
}

func customerFromRequest(in dto.CustomerRequest) (*entity.Customer, error) {
	name, err := required("customer_name", in.CustomerName)
	if err != nil {
		return nil, err
	}
	phone, err := required("phone_number", in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if err := nonNegativeInt("quantity", in.Quantity); err != nil {
		return nil, err
	}
	if err := nonNegative("total_amount", in.TotalAmount); err != nil {
		return nil, err
	}
	purchaseDate, err := dto.ParseDatePtr("purchase_date", in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	followUp, err := dto.ParseDatePtr("follow_up_date", in.FollowUpDate)
	if err != nil {
		return nil, err
	}
	return &entity.Customer{
		CustomerName:     name,
		PhoneNumber:      phone,
		Address:          dto.Optional(in.Address),
		ProductPurchased: dto.Optional(in.ProductPurchased),
		Quantity:         in.Quantity,
		TotalAmount:      in.TotalAmount,
		PurchaseDate:     purchaseDate,
		PaymentStatus:    dto.Or(in.PaymentStatus, entity.StatusPending),
		PaymentMethod:    dto.Optional(in.PaymentMethod),
		DeliveryStatus:   dto.Or(in.DeliveryStatus, entity.StatusPending),
		Notes:            dto.Optional(in.Notes),
		CustomerType:     dto.Or(in.CustomerType, entity.CustomerTypeNew),
		Channel:          dto.Optional(in.Channel),
		PreferredProduct: dto.Optional(in.PreferredProduct),
		FollowUpDate:     followUp,
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID: c.ID,
		CustomerRequest: dto.CustomerRequest{
			CustomerName:     c.CustomerName,
			PhoneNumber:      c.PhoneNumber,
			Address:          c.Address,
			ProductPurchased: c.ProductPurchased,
			Quantity:         c.Quantity,
			TotalAmount:      c.TotalAmount,
			PurchaseDate:     dto.FormatDatePtr(c.PurchaseDate),
			PaymentStatus:    c.PaymentStatus,
			PaymentMethod:    c.PaymentMethod,
			DeliveryStatus:   c.DeliveryStatus,
			Notes:            c.Notes,
			CustomerType:     c.CustomerType,
			Channel:          c.Channel,
			PreferredProduct: c.PreferredProduct,
			FollowUpDate:     dto.FormatDatePtr(c.FollowUpDate),
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func strPtr(s string) *string { return &s }
