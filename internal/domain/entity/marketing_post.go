package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketingPost a social media post and what it produced.
type MarketingPost struct {
	ID            int64
	Platform      string
	PostDate      *time.Time
	ContentType   *string
	Description   *string
	Engagement    int
	SalesFromPost decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
}
