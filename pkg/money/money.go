// Package money formats naira amounts for screens, spreadsheets and PDFs.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol currency sign prefixed to formatted amounts.
const Symbol = "₦"

var printer = message.NewPrinter(language.English)

// Format renders d as "₦4,500.00"; negatives as "-₦4,500.00".
func Format(d decimal.Decimal) string {
	s := Number(d)
	if strings.HasPrefix(s, "-") {
		return "-" + Symbol + s[1:]
	}
	return Symbol + s
}

// Number renders d with thousands separators and two decimals, without symbol.
func Number(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	grouped := intPart
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		grouped = printer.Sprintf("%d", n)
	}
	out := grouped + "." + frac
	if d.Round(2).IsNegative() {
		return "-" + out
	}
	return out
}

// Int renders n with thousands separators, e.g. 12,500.
func Int(n int) string {
	return printer.Sprintf("%d", n)
}
