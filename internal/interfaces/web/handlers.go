package web

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/screen"
	"github.com/jhoicas/progarden-crm/pkg/money"
)

const trendDays = 30

type resourcePage struct {
	layoutData
	Resource string
	Query    string
	List     *listView
	Form     *formView
	CanPDF   bool
}

type barRow struct {
	Label  string
	Amount string
	Value  float64
}

type homePage struct {
	layoutData
	Stats        []screen.Stat
	MonthLabel   string
	Trend        []barRow
	TrendMax     float64
	Expenses     []barRow
	ExpenseMax   float64
	Appointments []dto.AppointmentResponse
	LoadError    string
}

type restockPage struct {
	layoutData
	Items     []dto.RestockSuggestionDTO
	TotalCost string
	LoadError string
}

func (s *Server) lookup(c *fiber.Ctx) (screenHandler, error) {
	sc, ok := s.screens[c.Params("resource")]
	if !ok {
		return nil, fiber.ErrNotFound
	}
	if sc.AdminOnly() && !sessionOf(c).admin {
		return nil, fiber.ErrForbidden
	}
	return sc, nil
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Home GET /dashboard
func (s *Server) Home(c *fiber.Ctx) error {
	api := apiOf(c)
	data := homePage{layoutData: s.layout(c, "Dashboard", "")}

	var (
		stats    *dto.DashboardStatsDTO
		trend    []dto.SalesTrendPointDTO
		expenses []dto.ExpenseCategoryDTO
		appts    []dto.AppointmentResponse
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) { stats, err = api.Dashboard().Stats(ctx); return })
	g.Go(func() (err error) { trend, err = api.Dashboard().SalesTrend(ctx, trendDays); return })
	g.Go(func() (err error) { expenses, err = api.Dashboard().ExpenseBreakdown(ctx); return })
	g.Go(func() (err error) { appts, err = api.Dashboard().RecentAppointments(ctx); return })
	if err := g.Wait(); err != nil {
		if unauthorized(err) {
			return c.Redirect("/login")
		}
		s.log.Error().Err(err).Msg("load dashboard")
		data.LoadError = describe(err)
		return s.render(c, fiber.StatusOK, "home", data)
	}

	data.MonthLabel = stats.MonthLabel
	data.Stats = []screen.Stat{
		{Label: "Total sales", Value: money.Format(stats.TotalSales)},
		{Label: "Total expenses", Value: money.Format(stats.TotalExpenses)},
		{Label: "Net profit", Value: money.Format(stats.NetProfit)},
		{Label: "Customers", Value: money.Int(stats.TotalCustomers)},
		{Label: "Repeat customers", Value: money.Int(stats.RepeatCustomers)},
		{Label: "Income this month", Value: money.Format(stats.MonthlyIncome)},
		{Label: "Expenses this month", Value: money.Format(stats.MonthlyExpenses)},
	}
	for _, p := range trend {
		v := p.Amount.InexactFloat64()
		data.Trend = append(data.Trend, barRow{Label: p.Date, Amount: money.Format(p.Amount), Value: v})
		data.TrendMax = max(data.TrendMax, v)
	}
	for _, e := range expenses {
		v := e.Amount.InexactFloat64()
		data.Expenses = append(data.Expenses, barRow{Label: e.Category, Amount: money.Format(e.Amount), Value: v})
		data.ExpenseMax = max(data.ExpenseMax, v)
	}
	data.Appointments = appts
	return s.render(c, fiber.StatusOK, "home", data)
}

// List GET /dashboard/:resource
// ?q= filters, ?modal=new opens the create form, ?edit=<id> the edit form.
func (s *Server) List(c *fiber.Ctx) error {
	sc, err := s.lookup(c)
	if err != nil {
		return err
	}
	api := apiOf(c)
	ctx := c.UserContext()

	var (
		m      screen.Modal
		banner string
	)
	switch {
	case c.Query("modal") == "new":
		values := sc.Defaults()
		if cid := c.QueryInt("customer"); cid > 0 && sc.Name() == "financial" {
			cust, err := api.Customers().GetByID(ctx, int64(cid))
			switch {
			case unauthorized(err):
				return c.Redirect("/login")
			case err != nil:
				banner = "Could not load the customer: " + describe(err)
			default:
				values = screen.FinancialPrefill(*cust, s.now())
			}
		}
		m.OpenCreate(values)
	case c.Query("edit") != "":
		id, perr := strconv.ParseInt(c.Query("edit"), 10, 64)
		if perr != nil {
			banner = "Invalid record id."
			break
		}
		values, err := sc.Values(ctx, api, id)
		switch {
		case unauthorized(err):
			return c.Redirect("/login")
		case err != nil:
			banner = "Could not open the record: " + describe(err)
		default:
			m.OpenEdit(id, values)
		}
	}
	return s.renderList(c, sc, c.Query("q"), &m, nil, banner, fiber.StatusOK)
}

func (s *Server) renderList(c *fiber.Ctx, sc screenHandler, query string, m *screen.Modal, fieldErrs map[string]string, banner string, status int) error {
	api := apiOf(c)
	ctx := c.UserContext()

	view, err := sc.List(ctx, api, query)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect("/login")
		}
		return err
	}
	if view.Error != "" {
		s.log.Error().Str("resource", sc.Name()).Str("error", view.Error).Msg("load collection")
	}

	data := resourcePage{
		layoutData: s.layout(c, sc.Title(), sc.Name()),
		Resource:   sc.Name(),
		Query:      query,
		List:       view,
		CanPDF:     sc.Name() == "invoices",
	}
	if banner != "" {
		data.Error = banner
	}
	if m.IsOpen() {
		data.Form = buildForm(sc, m, query, fieldErrs)
		if sc.Name() == "financial" {
			if err := customerChoices(ctx, api, data.Form); err != nil {
				if unauthorized(err) {
					return c.Redirect("/login")
				}
				s.log.Warn().Err(err).Msg("load customers for picker")
			}
		}
	}
	return s.render(c, status, "resource", data)
}

// Create POST /dashboard/:resource
func (s *Server) Create(c *fiber.Ctx) error {
	return s.submit(c, 0)
}

// Update POST /dashboard/:resource/:id
func (s *Server) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	return s.submit(c, id)
}

func (s *Server) submit(c *fiber.Ctx, id int64) error {
	sc, err := s.lookup(c)
	if err != nil {
		return err
	}
	query := c.FormValue("q")
	values := formValues(c, sc.Fields())

	var m screen.Modal
	if id > 0 {
		m.OpenEdit(id, values)
	} else {
		m.OpenCreate(values)
	}

	err = sc.Submit(c.UserContext(), apiOf(c), &m, values)
	if err == nil {
		s.log.Info().Str("resource", sc.Name()).Int64("id", id).Msg("record saved")
		sessionOf(c).flash("Record saved.", false)
		return c.Redirect(listURL(sc.Name(), query), fiber.StatusSeeOther)
	}
	if unauthorized(err) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	s.log.Warn().Err(err).Str("resource", sc.Name()).Int64("id", id).Msg("save rejected")
	return s.renderList(c, sc, query, &m, fieldErrors(err), "", fiber.StatusUnprocessableEntity)
}

// Delete POST /dashboard/:resource/:id/delete
func (s *Server) Delete(c *fiber.Ctx) error {
	sc, err := s.lookup(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ts := sessionOf(c)
	if err := sc.Delete(c.UserContext(), apiOf(c), id); err != nil {
		if unauthorized(err) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		s.log.Warn().Err(err).Str("resource", sc.Name()).Int64("id", id).Msg("delete failed")
		ts.flash("Could not delete the record: "+describe(err), true)
	} else {
		s.log.Info().Str("resource", sc.Name()).Int64("id", id).Msg("record deleted")
		ts.flash("Record deleted.", false)
	}
	return c.Redirect(listURL(sc.Name(), c.FormValue("q")), fiber.StatusSeeOther)
}

// RecordSale POST /dashboard/customers/:id/record-sale
// Books the customer's purchase as an income record.
func (s *Server) RecordSale(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	ts := sessionOf(c)
	rec, err := apiOf(c).Financial().CreateFromCustomer(c.UserContext(), id)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		s.log.Warn().Err(err).Int64("customer", id).Msg("record sale failed")
		ts.flash("Could not record the sale: "+describe(err), true)
	} else {
		s.log.Info().Int64("customer", id).Int64("record", rec.ID).Msg("sale recorded")
		ts.flash(fmt.Sprintf("Sale recorded as income (%s).", money.Format(rec.Amount)), false)
	}
	return c.Redirect(listURL("customers", c.FormValue("q")), fiber.StatusSeeOther)
}

// Export GET /dashboard/:resource/export.xlsx
// The spreadsheet holds the rows the screen shows for ?q=.
func (s *Server) Export(c *fiber.Ctx) error {
	sc, err := s.lookup(c)
	if err != nil {
		return err
	}
	query := c.Query("q")
	sh, err := sc.Sheet(c.UserContext(), apiOf(c), query)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect("/login")
		}
		s.log.Error().Err(err).Str("resource", sc.Name()).Msg("export")
		sessionOf(c).flash("Could not export: "+describe(err), true)
		return c.Redirect(listURL(sc.Name(), query))
	}

	data, err := writeXLSX(sh)
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("%s-%s.xlsx", sc.Name(), s.now().Format(screen.DateLayout))
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// InvoicePDF GET /dashboard/invoices/:id/pdf
func (s *Server) InvoicePDF(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	pdf, err := apiOf(c).Invoices().PDF(c.UserContext(), id)
	if err != nil {
		if unauthorized(err) {
			return c.Redirect("/login")
		}
		s.log.Error().Err(err).Int64("id", id).Msg("invoice pdf")
		sessionOf(c).flash("Could not render the invoice: "+describe(err), true)
		return c.Redirect("/dashboard/invoices")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"invoice-%d.pdf\"", id))
	return c.Send(pdf)
}

// Restock GET /dashboard/restock
func (s *Server) Restock(c *fiber.Ctx) error {
	data := restockPage{layoutData: s.layout(c, "Restock", "restock")}
	items, err := apiOf(c).Inventory().Restock(c.UserContext())
	if err != nil {
		if unauthorized(err) {
			return c.Redirect("/login")
		}
		s.log.Error().Err(err).Msg("load restock list")
		data.LoadError = describe(err)
		return s.render(c, fiber.StatusOK, "restock", data)
	}
	data.Items = items
	data.TotalCost = money.Format(restockCost(items))
	return s.render(c, fiber.StatusOK, "restock", data)
}
