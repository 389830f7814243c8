package screen

import (
	"encoding/json"
	"net/mail"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidationError per-field messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + ": " + e.Fields[n]
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

// BuildPayload turns raw form values into the JSON body of a create/update call.
// Numbers travel as json.Number, blank optional strings and dates as null.
func BuildPayload(fields []Field, values map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	verr := &ValidationError{}

	for _, f := range fields {
		if f.ReadOnly {
			continue
		}
		raw := strings.TrimSpace(values[f.Name])

		switch f.Kind {
		case Bool:
			out[f.Name] = Checked(raw)
			continue
		case List:
			out[f.Name] = splitList(values[f.Name])
			continue
		case Password:
			if raw != "" {
				out[f.Name] = raw
			} else if f.Required {
				verr.add(f.Name, "is required")
			}
			continue
		}

		if raw == "" {
			raw = f.Default
		}
		if raw == "" {
			if f.Required {
				verr.add(f.Name, "is required")
				continue
			}
			out[f.Name] = blank(f)
			continue
		}

		v, msg := coerce(f, raw, values[StoredKey(f.Name)])
		if msg != "" {
			verr.add(f.Name, msg)
			continue
		}
		out[f.Name] = v
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return out, nil
}

// Checked reads a checkbox value: "on" from a browser, "true"/"1" from seeded values.
func Checked(raw string) bool {
	return raw == "on" || raw == "true" || raw == "1"
}

func blank(f Field) any {
	switch f.Kind {
	case Integer, Decimal:
		if f.Nullable {
			return nil
		}
		return json.Number("0")
	}
	return nil
}

// coerce parses raw by kind. stored is the select value the record already
// had; it stays acceptable even when it is not one of the options.
func coerce(f Field, raw, stored string) (any, string) {
	switch f.Kind {
	case Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "must be a whole number"
		}
		return json.Number(strconv.FormatInt(n, 10)), ""
	case Decimal:
		d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return nil, "must be a number"
		}
		return json.Number(d.String()), ""
	case Date:
		if _, err := time.Parse(DateLayout, raw); err != nil {
			return nil, "must be a date (YYYY-MM-DD)"
		}
	case Time:
		if _, err := time.Parse("15:04", raw); err != nil {
			return nil, "must be a time (HH:MM)"
		}
	case Email:
		if _, err := mail.ParseAddress(raw); err != nil {
			return nil, "must be an email address"
		}
	case Select:
		if len(f.Options) > 0 && !slices.Contains(f.Options, raw) && raw != stored {
			return nil, "must be one of " + strings.Join(f.Options, ", ")
		}
	}
	return raw, ""
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
