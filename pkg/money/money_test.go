package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := map[string]string{
		"4500":        "₦4,500.00",
		"0":           "₦0.00",
		"1234567.891": "₦1,234,567.89",
		"-2500.5":     "-₦2,500.50",
		"999.999":     "₦1,000.00",
		"-0.001":      "₦0.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(decimal.RequireFromString(in)), in)
	}
}

func TestInt(t *testing.T) {
	assert.Equal(t, "12,500", Int(12500))
	assert.Equal(t, "7", Int(7))
}
