package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/client"
	"github.com/jhoicas/progarden-crm/pkg/config"
)

type memSession struct {
	mu      sync.Mutex
	token   string
	cleared bool
}

func (s *memSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *memSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.cleared = true
}

// customerAPI a tiny in-memory /customers backend.
type customerAPI struct {
	mu     sync.Mutex
	nextID int64
	rows   []dto.CustomerResponse
}

func (a *customerAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer tok-1" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"missing token"}`))
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/customers/":
		_ = json.NewEncoder(w).Encode(a.rows)
	case r.Method == http.MethodPost && r.URL.Path == "/customers/":
		var in dto.CustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.CustomerName == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"VALIDATION","message":"customer_name is required","field":"customer_name"}`))
			return
		}
		a.nextID++
		row := dto.CustomerResponse{ID: a.nextID, CustomerRequest: in}
		a.rows = append(a.rows, row)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(row)
	case r.Method == http.MethodDelete && r.URL.Path == "/customers/1":
		a.rows = nil
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"resource not found"}`))
	}
}

func newClient(t *testing.T, h http.Handler, s client.Session) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(config.APIClientConfig{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}).WithSession(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resource CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestResource_CreateThenList(t *testing.T) {
	api := &customerAPI{}
	c := newClient(t, api, &memSession{token: "tok-1"})
	ctx := context.Background()

	payload := map[string]any{
		"customer_name": "Ada Obi",
		"phone_number":  "08011112222",
		"quantity":      json.Number("3"),
		"total_amount":  json.Number("4500"),
	}
	created, err := c.Customers().Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	list, err := c.Customers().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada Obi", list[0].CustomerName)
	assert.Equal(t, "08011112222", list[0].PhoneNumber)
	assert.Equal(t, 3, list[0].Quantity)
	assert.True(t, decimal.NewFromInt(4500).Equal(list[0].TotalAmount))
}

func TestResource_ValidationError(t *testing.T) {
	c := newClient(t, &customerAPI{}, &memSession{token: "tok-1"})

	_, err := c.Customers().Create(context.Background(), map[string]any{"phone_number": "1"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "customer_name", apiErr.Field)
	assert.True(t, apiErr.IsValidation())
}

func TestResource_DeleteAndNotFound(t *testing.T) {
	c := newClient(t, &customerAPI{}, &memSession{token: "tok-1"})
	ctx := context.Background()

	require.NoError(t, c.Customers().Delete(ctx, 1))

	err := c.Customers().Delete(ctx, 99)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "resource not found", apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Session handling
// ──────────────────────────────────────────────────────────────────────────────

func TestUnauthorized_ClearsSession(t *testing.T) {
	s := &memSession{token: "expired"}
	c := newClient(t, &customerAPI{}, s)

	_, err := c.Customers().GetAll(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.True(t, s.cleared)
	assert.Empty(t, s.Token())
}

func TestNoSession_SendsNoAuthorization(t *testing.T) {
	var got string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	c := newClient(t, h, &memSession{})

	_, err := c.Clients().GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLogin_PostsForm(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "admin" || r.PostForm.Get("password") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	})
	c := newClient(t, h, nil)

	tok, err := c.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	_, err = c.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Failures
// ──────────────────────────────────────────────────────────────────────────────

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(config.APIClientConfig{BaseURL: url, Timeout: time.Second})
	_, err := c.Customers().GetAll(context.Background())
	assert.ErrorIs(t, err, client.ErrTransport)
}

func TestCancelledContext(t *testing.T) {
	block := make(chan struct{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	c := newClient(t, h, nil)
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Customers().GetAll(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlainTextErrorBody(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})
	c := newClient(t, h, nil)

	_, err := c.Suppliers().GetAll(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_GATEWAY", apiErr.Code)
	assert.Equal(t, "upstream down", apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extra endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestExtraEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/sales-trend", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		_, _ = w.Write([]byte(`[{"date":"2026-03-01","amount":1200.5}]`))
	})
	mux.HandleFunc("/financial/from-customer/4", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"date":"2026-03-01","transaction_type":"Income","amount":4500,"status":"Pending","customer_id":4}`))
	})
	mux.HandleFunc("/invoices/2/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	mux.HandleFunc("/inventory/restock", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"item_id":1,"item_name":"Rose","suggested_order_qty":8,"priority":1}]`))
	})
	c := newClient(t, mux, &memSession{token: "t"})
	ctx := context.Background()

	trend, err := c.Dashboard().SalesTrend(ctx, 7)
	require.NoError(t, err)
	require.Len(t, trend, 1)
	assert.Equal(t, "1200.5", trend[0].Amount.String())

	rec, err := c.Financial().CreateFromCustomer(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(9), rec.ID)
	require.NotNil(t, rec.CustomerID)
	assert.Equal(t, int64(4), *rec.CustomerID)

	pdf, err := c.Invoices().PDF(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))

	restock, err := c.Inventory().Restock(ctx)
	require.NoError(t, err)
	require.Len(t, restock, 1)
	assert.Equal(t, 8, restock[0].SuggestedOrderQty)
}
