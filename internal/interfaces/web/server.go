// Package web serves the server-rendered dashboard. Every page is one
// fetch-render round trip against the REST API; every form posts back and
// redirects so a refresh never resubmits.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/progarden-crm/internal/client"
	"github.com/jhoicas/progarden-crm/pkg/config"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server the dashboard.
type Server struct {
	api          *client.Client
	store        *session.Store
	pages        map[string]*template.Template
	screens      map[string]screenHandler
	order        []screenHandler
	fetchTimeout time.Duration
	log          *logger.Logger
	now          func() time.Time
}

// New parses the templates and builds the screen registry.
func New(api *client.Client, cfg config.WebConfig, log *logger.Logger) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	s := &Server{
		api:          api,
		store:        newStore(cfg),
		pages:        pages,
		fetchTimeout: fetchTimeout,
		log:          log.Named("web"),
		now:          time.Now,
	}
	s.order = defaultScreens()
	s.screens = make(map[string]screenHandler, len(s.order))
	for _, sc := range s.order {
		s.screens[sc.Name()] = sc
	}
	return s, nil
}

// Register mounts the dashboard routes.
func (s *Server) Register(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard") })
	app.Get("/login", s.LoginPage)
	app.Post("/login", s.Login)
	app.Get("/logout", s.Logout)
	app.Post("/logout", s.Logout)

	dash := app.Group("/dashboard", s.requireSession)
	dash.Get("/", s.Home)
	dash.Get("/restock", s.Restock)
	dash.Get("/invoices/:id/pdf", s.InvoicePDF)
	dash.Post("/customers/:id/record-sale", s.RecordSale)
	dash.Get("/:resource/export.xlsx", s.Export)
	dash.Get("/:resource", s.List)
	dash.Post("/:resource", s.Create)
	dash.Post("/:resource/:id", s.Update)
	dash.Post("/:resource/:id/delete", s.Delete)
}

var funcs = template.FuncMap{
	"percent": func(v, max float64) string {
		if max <= 0 {
			return "0%"
		}
		return fmt.Sprintf("%.0f%%", v/max*100)
	},
	"rowCtx": func(p resourcePage, r rowView) rowContext {
		return rowContext{rowView: r, Resource: p.Resource, Query: p.Query, CanPDF: p.CanPDF, CanRecordSale: p.Resource == "customers"}
	},
}

// rowContext a table row plus what its action links need.
type rowContext struct {
	rowView
	Resource      string
	Query         string
	CanPDF        bool
	CanRecordSale bool
}

func parsePages() (map[string]*template.Template, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{"home", "resource", "restock"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	t, err := template.New("login").Funcs(funcs).ParseFS(templateFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse login: %w", err)
	}
	pages["login"] = t
	return pages, nil
}

// navItem one sidebar link.
type navItem struct {
	Href   string
	Label  string
	Active bool
}

// layoutData what every page inside the sidebar layout needs.
type layoutData struct {
	Title    string
	Username string
	Nav      []navItem
	Notice   string
	Error    string
}

type loginData struct {
	Username string
	Error    string
}

func (s *Server) layout(c *fiber.Ctx, title, active string) layoutData {
	ts := sessionOf(c)
	d := layoutData{Title: title}
	admin := false
	if ts != nil {
		d.Username = ts.username
		admin = ts.admin
		d.Notice, d.Error = ts.popFlash()
	}
	d.Nav = append(d.Nav, navItem{Href: "/dashboard", Label: "Dashboard", Active: active == ""})
	for _, sc := range s.order {
		if sc.AdminOnly() && !admin {
			continue
		}
		d.Nav = append(d.Nav, navItem{Href: "/dashboard/" + sc.Name(), Label: sc.Title(), Active: active == sc.Name()})
	}
	d.Nav = append(d.Nav, navItem{Href: "/dashboard/restock", Label: "Restock", Active: active == "restock"})
	return d
}

func (s *Server) render(c *fiber.Ctx, status int, page string, data any) error {
	t, ok := s.pages[page]
	if !ok {
		return fmt.Errorf("web: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("web: render %s: %w", page, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func (s *Server) renderLogin(c *fiber.Ctx, status int, data loginData) error {
	var buf bytes.Buffer
	if err := s.pages["login"].ExecuteTemplate(&buf, "login", data); err != nil {
		return fmt.Errorf("web: render login: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// unauthorized reports whether err means the token is gone; the caller then
// redirects to /login.
func unauthorized(err error) bool {
	return errors.Is(err, client.ErrUnauthorized)
}

// describe the operator-facing text of a client error.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrTransport):
		return "Could not reach the server. Check your connection and try again."
	default:
		return err.Error()
	}
}
