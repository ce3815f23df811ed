package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Metrics is the derived price and liquidity view of a decoded pool.
// Price is quote per base with decimals applied.
type Metrics struct {
	Kind      Kind
	Price     *big.Rat
	Reserves  *Reserves
	CLMM      *CLMMMetrics
	Launchpad *LaunchpadMetrics

	// Warning carries a soft inconsistency; the rest of Metrics is still usable.
	Warning error
}

// CLMMMetrics describes the active range of a concentrated-liquidity pool.
type CLMMMetrics struct {
	Liquidity    *big.Int
	SqrtPriceX64 *big.Int
	Tick         int32
	ImpliedTick  int32
	// TickPrice is 1.0001^Tick with decimals applied.
	TickPrice *big.Rat
	// VirtualBase and VirtualQuote are L/sqrtP and L*sqrtP in raw units.
	VirtualBase  *big.Rat
	VirtualQuote *big.Rat
}

// LaunchpadMetrics describes progress along the bonding curve.
type LaunchpadMetrics struct {
	StartPrice      *big.Rat
	EndPrice        *big.Rat
	FundingProgress *big.Rat
	// RealPrice is real quote over real base with decimals applied, nil
	// while the pool holds no real base.
	RealPrice *big.Rat
	// TotalValue is the real reserves valued at RealPrice, in quote units.
	TotalValue *big.Rat
	Status     LaunchpadStatus
	// VestingUnlocked is nil when no evaluation time was supplied.
	VestingUnlocked *uint64
}

// PriceFloat returns the price as a float64, or 0 when no price is set.
func (m Metrics) PriceFloat() float64 {
	if m.Price == nil {
		return 0
	}
	f, _ := m.Price.Float64()
	return f
}

// PriceDecimal returns the price rounded to places decimal digits.
func (m Metrics) PriceDecimal(places int32) decimal.Decimal {
	if m.Price == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigRat(m.Price, places)
}
