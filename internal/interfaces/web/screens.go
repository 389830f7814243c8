package web

import (
	"context"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/screen"
	"github.com/jhoicas/progarden-crm/internal/client"
)

// screenHandler one resource screen with its element type erased, so the
// handlers can serve every resource through the same routes.
type screenHandler interface {
	Name() string
	Title() string
	AdminOnly() bool
	Fields() []screen.Field
	Defaults() map[string]string
	List(ctx context.Context, api *client.Client, query string) (*listView, error)
	Values(ctx context.Context, api *client.Client, id int64) (map[string]string, error)
	Submit(ctx context.Context, api *client.Client, m *screen.Modal, values map[string]string) error
	Delete(ctx context.Context, api *client.Client, id int64) error
	Sheet(ctx context.Context, api *client.Client, query string) (*sheet, error)
}

// listView a rendered table.
type listView struct {
	Headers []string
	Rows    []rowView
	Groups  []groupView
	Stats   []screen.Stat
	Empty   bool
	Error   string
	Shown   int
	Total   int
}

type rowView struct {
	ID    int64
	Cells []string
}

type groupView struct {
	Key  string
	Rows []rowView
}

// sheet a table ready to be written to a spreadsheet.
type sheet struct {
	Title   string
	Headers []string
	Rows    [][]string
}

type resourceScreen[T any] struct {
	def *screen.Definition[T]
	res func(*client.Client) client.Resource[T]
}

func (r *resourceScreen[T]) Name() string                { return r.def.Name }
func (r *resourceScreen[T]) Title() string               { return r.def.Title }
func (r *resourceScreen[T]) AdminOnly() bool             { return r.def.AdminOnly }
func (r *resourceScreen[T]) Fields() []screen.Field      { return r.def.Fields }
func (r *resourceScreen[T]) Defaults() map[string]string { return r.def.Defaults() }

// load fetches the collection. A failed fetch is recorded in the table; only
// ErrUnauthorized is returned, because it ends the request.
func (r *resourceScreen[T]) load(ctx context.Context, api *client.Client, query string) (*screen.Table[T], error) {
	tbl := screen.NewTable(r.def)
	tbl.SetQuery(query)
	items, err := r.res(api).GetAll(ctx)
	switch {
	case unauthorized(err):
		return nil, err
	case err != nil:
		tbl.Fail(err)
	default:
		tbl.Load(items)
	}
	return tbl, nil
}

func (r *resourceScreen[T]) rows(items []T) []rowView {
	out := make([]rowView, len(items))
	for i, it := range items {
		out[i] = rowView{ID: r.def.ID(it), Cells: r.def.Row(it)}
	}
	return out
}

func (r *resourceScreen[T]) List(ctx context.Context, api *client.Client, query string) (*listView, error) {
	tbl, err := r.load(ctx, api, query)
	if err != nil {
		return nil, err
	}
	v := &listView{Headers: r.def.Headers()}
	if tbl.State() == screen.Failed {
		v.Error = describe(tbl.Err())
		return v, nil
	}
	visible := tbl.Visible()
	v.Rows = r.rows(visible)
	for _, g := range tbl.Groups() {
		v.Groups = append(v.Groups, groupView{Key: g.Key, Rows: r.rows(g.Items)})
	}
	v.Stats = tbl.Stats()
	v.Empty = tbl.Empty()
	v.Shown = len(visible)
	v.Total = len(tbl.Items())
	return v, nil
}

func (r *resourceScreen[T]) Values(ctx context.Context, api *client.Client, id int64) (map[string]string, error) {
	item, err := r.res(api).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.def.Values(*item), nil
}

func (r *resourceScreen[T]) Submit(ctx context.Context, api *client.Client, m *screen.Modal, values map[string]string) error {
	return screen.Submit(ctx, m, r.def.Fields, values, resourceSubmitter[T]{r: r.res(api)}, nil)
}

func (r *resourceScreen[T]) Delete(ctx context.Context, api *client.Client, id int64) error {
	return r.res(api).Delete(ctx, id)
}

func (r *resourceScreen[T]) Sheet(ctx context.Context, api *client.Client, query string) (*sheet, error) {
	tbl, err := r.load(ctx, api, query)
	if err != nil {
		return nil, err
	}
	if tbl.State() == screen.Failed {
		return nil, tbl.Err()
	}
	sh := &sheet{Title: r.def.Title, Headers: r.def.Headers()}
	for _, it := range tbl.Visible() {
		sh.Rows = append(sh.Rows, r.def.Row(it))
	}
	return sh, nil
}

// resourceSubmitter adapts a typed API resource to screen.Submitter.
type resourceSubmitter[T any] struct {
	r client.Resource[T]
}

func (s resourceSubmitter[T]) Create(ctx context.Context, payload map[string]any) error {
	_, err := s.r.Create(ctx, payload)
	return err
}

func (s resourceSubmitter[T]) Update(ctx context.Context, id int64, payload map[string]any) error {
	_, err := s.r.Update(ctx, id, payload)
	return err
}

func defaultScreens() []screenHandler {
	return []screenHandler{
		&resourceScreen[dto.CustomerResponse]{def: screen.Customers(), res: (*client.Client).Customers},
		&resourceScreen[dto.InventoryResponse]{def: screen.Inventory(), res: func(c *client.Client) client.Resource[dto.InventoryResponse] { return c.Inventory().Resource }},
		&resourceScreen[dto.SupplierResponse]{def: screen.Suppliers(), res: (*client.Client).Suppliers},
		&resourceScreen[dto.FinancialResponse]{def: screen.Financial(), res: func(c *client.Client) client.Resource[dto.FinancialResponse] { return c.Financial().Resource }},
		&resourceScreen[dto.DeliveryResponse]{def: screen.Deliveries(), res: (*client.Client).Deliveries},
		&resourceScreen[dto.MarketingResponse]{def: screen.Marketing(), res: (*client.Client).Marketing},
		&resourceScreen[dto.AppointmentResponse]{def: screen.Appointments(), res: (*client.Client).Appointments},
		&resourceScreen[dto.ClientResponse]{def: screen.Clients(), res: (*client.Client).Clients},
		&resourceScreen[dto.InvoiceResponse]{def: screen.Invoices(), res: func(c *client.Client) client.Resource[dto.InvoiceResponse] { return c.Invoices().Resource }},
		&resourceScreen[dto.UserResponse]{def: screen.Users(), res: (*client.Client).Users},
	}
}
