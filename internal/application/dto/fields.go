package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/progarden-crm/internal/domain"
)

// DateLayout wire format of every date field.
const DateLayout = "2006-01-02"

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr like FormatDate; nil stays nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// ParseDate parses a required YYYY-MM-DD value.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.Required(field)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.Invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// ParseDatePtr parses an optional YYYY-MM-DD value; nil or blank means no date.
func ParseDatePtr(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Optional trims the value and turns an empty string into nil.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Or returns the trimmed value, or def when it is blank.
func Or(s, def string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return def
}
