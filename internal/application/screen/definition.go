// Package screen holds the presentation logic of the dashboard: the generic
// resource table, the modal form state machine and the payload builder. It has
// no knowledge of HTTP so every rule can be tested as plain functions.
package screen

import "slices"

// Kind how a form field is edited and coerced.
type Kind int

const (
	Text Kind = iota
	TextArea
	Integer
	Decimal
	Date
	Time
	Select
	Email
	List // comma or newline separated values, sent as a JSON array
	Bool
	Password // write-only; blank means "keep the current one"
)

// DateLayout wire format of every date field.
const DateLayout = "2006-01-02"

// Field one input of a resource form.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Nullable bool // numeric fields: blank is sent as null instead of 0
	ReadOnly bool // shown, never sent
	Options  []string
	Default  string
}

// StoredKey names the hidden input that carries a select field's stored value
// when the record holds a value outside the field's options (created through
// the API, or before the option list changed). Posting it back lets an edit keep
// that value.
func StoredKey(name string) string { return "stored_" + name }

// Choices the options of a select field, plus stored when it is not one of them.
func (f Field) Choices(stored string) []string {
	if stored == "" || slices.Contains(f.Options, stored) {
		return f.Options
	}
	return append(slices.Clone(f.Options), stored)
}

// Column one table column.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Stat one aggregate card shown above the table.
type Stat struct {
	Label string
	Value string
}

// Definition everything that differs between two resource screens.
type Definition[T any] struct {
	Name    string // URL segment, e.g. "customers"
	Title   string
	Fields  []Field
	Columns []Column[T]
	Search  func(T) []string // values matched by the search box
	Stats   func([]T) []Stat // computed over the unfiltered collection
	ID      func(T) int64
	Values  func(T) map[string]string // seeds the edit form
	Group   func(T) string            // optional row grouping key

	AdminOnly bool // shown to administrators only
}

// Defaults values a create form opens with.
func (d *Definition[T]) Defaults() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		if f.Default != "" {
			out[f.Name] = f.Default
		}
	}
	return out
}

// Field looks a field up by name.
func (d *Definition[T]) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Headers column titles.
func (d *Definition[T]) Headers() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Header
	}
	return out
}

// Row renders item as one table row.
func (d *Definition[T]) Row(item T) []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Value(item)
	}
	return out
}
