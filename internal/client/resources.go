package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
)

// Resource typed CRUD access to one REST collection.
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource binds a collection path such as "/customers".
func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{c: c, path: path}
}

// Path the collection path.
func (r Resource[T]) Path() string { return r.path }

func (r Resource[T]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// GetAll lists the whole collection.
func (r Resource[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.getJSON(ctx, r.path+"/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one record.
func (r Resource[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.c.getJSON(ctx, r.item(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts payload and returns the stored record.
func (r Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, http.MethodPost, r.path+"/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces record id with payload.
func (r Resource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	var out T
	if err := r.c.doJSON(ctx, http.MethodPut, r.item(id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes record id.
func (r Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.c.Do(ctx, http.MethodDelete, r.item(id), nil)
	return err
}

func (c *Client) Customers() Resource[dto.CustomerResponse]       { return NewResource[dto.CustomerResponse](c, "/customers") }
func (c *Client) Suppliers() Resource[dto.SupplierResponse]       { return NewResource[dto.SupplierResponse](c, "/suppliers") }
func (c *Client) Deliveries() Resource[dto.DeliveryResponse]      { return NewResource[dto.DeliveryResponse](c, "/deliveries") }
func (c *Client) Marketing() Resource[dto.MarketingResponse]      { return NewResource[dto.MarketingResponse](c, "/marketing") }
func (c *Client) Appointments() Resource[dto.AppointmentResponse] { return NewResource[dto.AppointmentResponse](c, "/appointments") }
func (c *Client) Clients() Resource[dto.ClientResponse]           { return NewResource[dto.ClientResponse](c, "/clients") }
func (c *Client) Users() Resource[dto.UserResponse]               { return NewResource[dto.UserResponse](c, "/users") }

// InventoryAPI inventory collection plus the restock report.
type InventoryAPI struct {
	Resource[dto.InventoryResponse]
}

// Inventory returns the inventory collection.
func (c *Client) Inventory() InventoryAPI {
	return InventoryAPI{NewResource[dto.InventoryResponse](c, "/inventory")}
}

// Restock lists the items that need ordering, most urgent first.
func (a InventoryAPI) Restock(ctx context.Context) ([]dto.RestockSuggestionDTO, error) {
	var out []dto.RestockSuggestionDTO
	if err := a.c.getJSON(ctx, a.path+"/restock", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FinancialAPI financial records plus booking a customer's sale.
type FinancialAPI struct {
	Resource[dto.FinancialResponse]
}

// Financial returns the financial records collection.
func (c *Client) Financial() FinancialAPI {
	return FinancialAPI{NewResource[dto.FinancialResponse](c, "/financial")}
}

// CreateFromCustomer books the sale of customer id as income.
func (a FinancialAPI) CreateFromCustomer(ctx context.Context, customerID int64) (*dto.FinancialResponse, error) {
	var out dto.FinancialResponse
	path := fmt.Sprintf("%s/from-customer/%d", a.path, customerID)
	if err := a.c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvoicesAPI invoices plus their PDF rendering.
type InvoicesAPI struct {
	Resource[dto.InvoiceResponse]
}

// Invoices returns the invoices collection.
func (c *Client) Invoices() InvoicesAPI {
	return InvoicesAPI{NewResource[dto.InvoiceResponse](c, "/invoices")}
}

// PDF downloads the rendered invoice.
func (a InvoicesAPI) PDF(ctx context.Context, id int64) ([]byte, error) {
	res, err := a.c.Do(ctx, http.MethodGet, a.item(id)+"/pdf", nil)
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// DashboardAPI read-only dashboard figures.
type DashboardAPI struct {
	c *Client
}

// Dashboard returns the dashboard endpoints.
func (c *Client) Dashboard() DashboardAPI { return DashboardAPI{c: c} }

// Stats headline figures.
func (a DashboardAPI) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var out dto.DashboardStatsDTO
	if err := a.c.getJSON(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesTrend income per day over the last days (server default when days <= 0).
func (a DashboardAPI) SalesTrend(ctx context.Context, days int) ([]dto.SalesTrendPointDTO, error) {
	path := "/dashboard/sales-trend"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var out []dto.SalesTrendPointDTO
	if err := a.c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpenseBreakdown expenses per category.
func (a DashboardAPI) ExpenseBreakdown(ctx context.Context) ([]dto.ExpenseCategoryDTO, error) {
	var out []dto.ExpenseCategoryDTO
	if err := a.c.getJSON(ctx, "/dashboard/expense-breakdown", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentAppointments the next appointments.
func (a DashboardAPI) RecentAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	var out []dto.AppointmentResponse
	if err := a.c.getJSON(ctx, "/dashboard/recent-appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}
