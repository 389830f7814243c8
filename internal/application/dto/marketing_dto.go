package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketingRequest body of POST/PUT /marketing/.
type MarketingRequest struct {
	Platform      string          `json:"platform"`
	PostDate      *string         `json:"post_date"`
	ContentType   *string         `json:"content_type"`
	Description   *string         `json:"description"`
	Engagement    int             `json:"engagement"`
	SalesFromPost decimal.Decimal `json:"sales_from_post"`
	Notes         *string         `json:"notes"`
}

// MarketingResponse a stored post.
type MarketingResponse struct {
	ID int64 `json:"id"`
	MarketingRequest
	CreatedAt time.Time `json:"created_at"`
}
