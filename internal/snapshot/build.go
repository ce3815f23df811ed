package snapshot

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"rayScope/internal/model"
	"rayScope/internal/pool"
)

const (
	pricePlaces    = 18
	progressPlaces = 6
)

// Build flattens a query result into a storable snapshot.
func Build(result pool.Result, observedAt time.Time) model.PoolSnapshot {
	base, quote := result.Pool.Mints()
	snap := model.PoolSnapshot{
		Address:    result.Address.String(),
		Kind:       result.Pool.Kind(),
		BaseMint:   base.String(),
		QuoteMint:  quote.String(),
		Price:      result.Metrics.PriceDecimal(pricePlaces),
		ObservedAt: observedAt.UTC(),
	}

	m := result.Metrics
	if m.Reserves != nil {
		snap.BaseReserve = uintString(m.Reserves.Base.Amount)
		snap.QuoteReserve = uintString(m.Reserves.Quote.Amount)
	}
	if m.CLMM != nil {
		liquidity := m.CLMM.Liquidity.String()
		sqrtPrice := m.CLMM.SqrtPriceX64.String()
		tick := m.CLMM.Tick
		snap.Liquidity = &liquidity
		snap.SqrtPriceX64 = &sqrtPrice
		snap.Tick = &tick
	}
	if m.Launchpad != nil && m.Launchpad.FundingProgress != nil {
		progress := decimal.NewFromBigRat(m.Launchpad.FundingProgress, progressPlaces).String()
		snap.Progress = &progress
	}
	if m.Warning != nil {
		snap.Warning = m.Warning.Error()
	}
	return snap
}

// Record describes the static side of a pool.
func Record(result pool.Result, firstSeen time.Time) model.PoolRecord {
	baseMint, quoteMint := result.Pool.Mints()
	baseVault, quoteVault := result.Pool.Vaults()
	baseDecimals, quoteDecimals := model.Decimals(result.Pool)
	return model.PoolRecord{
		Address:       result.Address.String(),
		Kind:          result.Pool.Kind(),
		BaseMint:      baseMint.String(),
		QuoteMint:     quoteMint.String(),
		BaseVault:     baseVault.String(),
		QuoteVault:    quoteVault.String(),
		BaseDecimals:  baseDecimals,
		QuoteDecimals: quoteDecimals,
		FirstSeen:     firstSeen.UTC(),
	}
}

func uintString(v uint64) *string {
	s := strconv.FormatUint(v, 10)
	return &s
}
