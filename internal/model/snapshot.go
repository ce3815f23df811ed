package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PoolSnapshot is one observation of a pool written by the snapshot runner.
// Raw amounts are encoded as decimal strings.
type PoolSnapshot struct {
	Address      string          `json:"address"`
	Kind         Kind            `json:"kind"`
	BaseMint     string          `json:"base_mint"`
	QuoteMint    string          `json:"quote_mint"`
	Price        decimal.Decimal `json:"price"`
	BaseReserve  *string         `json:"base_reserve,omitempty"`
	QuoteReserve *string         `json:"quote_reserve,omitempty"`
	Liquidity    *string         `json:"liquidity,omitempty"`
	SqrtPriceX64 *string         `json:"sqrt_price_x64,omitempty"`
	Tick         *int32          `json:"tick,omitempty"`
	Progress     *string         `json:"funding_progress,omitempty"`
	Warning      string          `json:"warning,omitempty"`
	ObservedAt   time.Time       `json:"observed_at"`
}
