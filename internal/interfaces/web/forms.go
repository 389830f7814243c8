package web

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/progarden-crm/internal/application/screen"
	"github.com/jhoicas/progarden-crm/internal/client"
)

// formView the open modal.
type formView struct {
	Action    string
	Cancel    string
	Editing   bool
	ID        int64
	Query     string
	Error     string
	Fields    []fieldView
	Customers []choice // financial only: pick a customer to pre-fill from
}

type fieldView struct {
	Name       string
	Label      string
	Input      string
	Step       string
	Value      string
	Error      string
	Required   bool
	ReadOnly   bool
	Choices    []choice
	StoredName string // select only: hidden input keeping an off-list value
	Stored     string
}

type choice struct {
	Value    string
	Label    string
	Selected bool
}

var inputTypes = map[screen.Kind]string{
	screen.Text:     "text",
	screen.TextArea: "textarea",
	screen.Integer:  "number",
	screen.Decimal:  "number",
	screen.Date:     "date",
	screen.Time:     "time",
	screen.Select:   "select",
	screen.Email:    "email",
	screen.List:     "textarea",
	screen.Bool:     "checkbox",
	screen.Password: "password",
}

func buildForm(sc screenHandler, m *screen.Modal, query string, fieldErrs map[string]string) *formView {
	f := &formView{
		Action:  "/dashboard/" + sc.Name(),
		Cancel:  listURL(sc.Name(), query),
		Editing: m.Editing(),
		ID:      m.ID(),
		Query:   query,
	}
	if m.Editing() {
		f.Action += "/" + strconv.FormatInt(m.ID(), 10)
	}
	if err := m.Err(); err != nil {
		var verr *screen.ValidationError
		if errors.As(err, &verr) {
			f.Error = "Please correct the highlighted fields."
		} else {
			f.Error = describe(err)
		}
	}

	for _, fd := range sc.Fields() {
		fv := fieldView{
			Name:     fd.Name,
			Label:    fd.Label,
			Input:    inputTypes[fd.Kind],
			Value:    m.Value(fd.Name),
			Error:    fieldErrs[fd.Name],
			Required: fd.Required,
			ReadOnly: fd.ReadOnly,
		}
		switch fd.Kind {
		case screen.Integer:
			fv.Step = "1"
		case screen.Decimal:
			fv.Step = "0.01"
		case screen.Password:
			fv.Value = ""
		case screen.Bool:
			fv.Value = strconv.FormatBool(screen.Checked(fv.Value))
		case screen.Select:
			fv.StoredName = screen.StoredKey(fd.Name)
			fv.Stored = m.Value(fv.StoredName)
			if fv.Stored == "" && !slices.Contains(fd.Options, fv.Value) {
				fv.Stored = fv.Value
			}
			if !fd.Required && fd.Default == "" {
				fv.Choices = append(fv.Choices, choice{Label: "-- none --", Selected: fv.Value == ""})
			}
			for _, o := range fd.Choices(fv.Stored) {
				fv.Choices = append(fv.Choices, choice{Value: o, Label: o, Selected: o == fv.Value})
			}
		}
		f.Fields = append(f.Fields, fv)
	}
	return f
}

// formValues the posted values of fields.
func formValues(c *fiber.Ctx, fields []screen.Field) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = c.FormValue(f.Name)
		if f.Kind == screen.Select {
			if v := c.FormValue(screen.StoredKey(f.Name)); v != "" {
				out[screen.StoredKey(f.Name)] = v
			}
		}
	}
	return out
}

// fieldErrors per-field messages of a failed submission, from the local
// validation or from the backend's 400/409 answer.
func fieldErrors(err error) map[string]string {
	var verr *screen.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Field != "" {
		return map[string]string{apiErr.Field: apiErr.Message}
	}
	return nil
}

// customerChoices the financial form's customer picker. The customer_id field
// becomes a select of customers.
func customerChoices(ctx context.Context, api *client.Client, form *formView) error {
	customers, err := api.Customers().GetAll(ctx)
	if err != nil {
		return err
	}
	selected := ""
	for i := range form.Fields {
		if form.Fields[i].Name == "customer_id" {
			selected = form.Fields[i].Value
		}
	}
	opts := []choice{{Label: "-- no customer --", Selected: selected == ""}}
	for _, cu := range customers {
		id := strconv.FormatInt(cu.ID, 10)
		opts = append(opts, choice{Value: id, Label: cu.CustomerName + " (" + cu.PhoneNumber + ")", Selected: id == selected})
	}
	form.Customers = opts
	for i := range form.Fields {
		if form.Fields[i].Name == "customer_id" {
			form.Fields[i].Input = "select"
			form.Fields[i].Choices = opts
		}
	}
	return nil
}

func listURL(resource, query string) string {
	u := "/dashboard/" + resource
	if query != "" {
		u += "?q=" + url.QueryEscape(query)
	}
	return u
}
