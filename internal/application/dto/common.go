package dto

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers (4500, not "4500").
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// IDResponse body of endpoints that only report the affected id.
type IDResponse struct {
	ID int64 `json:"id"`
}
