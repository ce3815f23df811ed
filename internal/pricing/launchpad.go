package pricing

import (
	"fmt"
	"math/big"
	"time"

	"rayScope/internal/model"
)

func deriveLaunchpad(pool *model.LaunchpadPool, opts Options) (model.Metrics, error) {
	if pool.VirtualBase <= pool.RealBase {
		return model.Metrics{}, fmt.Errorf("derive launchpad price: curve has no base left: %w", ErrDivisionByZero)
	}
	shift := decimalShift(int(pool.BaseDecimals) - int(pool.QuoteDecimals))

	price := curvePrice(pool.VirtualQuote, pool.RealQuote, pool.VirtualBase, pool.RealBase)
	price.Mul(price, shift)

	start := curvePrice(pool.VirtualQuote, 0, pool.VirtualBase, 0)
	start.Mul(start, shift)

	lp := &model.LaunchpadMetrics{
		StartPrice: start,
		Status:     pool.Status,
	}
	if pool.VirtualBase > pool.TotalBaseSell {
		end := curvePrice(pool.VirtualQuote, pool.TotalQuoteFundRaising, pool.VirtualBase, pool.TotalBaseSell)
		lp.EndPrice = end.Mul(end, shift)
	}
	if pool.TotalQuoteFundRaising > 0 {
		lp.FundingProgress = new(big.Rat).SetFrac(
			new(big.Int).SetUint64(pool.RealQuote),
			new(big.Int).SetUint64(pool.TotalQuoteFundRaising),
		)
	}
	lp.RealPrice, lp.TotalValue = realValue(pool)
	if !opts.Now.IsZero() {
		unlocked := VestingUnlocked(pool.Vesting, opts.Now)
		lp.VestingUnlocked = &unlocked
	}

	return model.Metrics{
		Kind:      model.KindLaunchpad,
		Price:     price,
		Launchpad: lp,
	}, nil
}

// realValue prices the real reserves alone. Without real base the value is
// the real quote balance.
func realValue(pool *model.LaunchpadPool) (*big.Rat, *big.Rat) {
	realQuote := new(big.Rat).SetInt(new(big.Int).SetUint64(pool.RealQuote))
	total := new(big.Rat).Set(realQuote)

	var price *big.Rat
	if pool.RealBase > 0 {
		raw := new(big.Rat).SetFrac(
			new(big.Int).SetUint64(pool.RealQuote),
			new(big.Int).SetUint64(pool.RealBase),
		)
		baseValue := new(big.Rat).Mul(raw, new(big.Rat).SetInt(new(big.Int).SetUint64(pool.RealBase)))
		total.Add(total, baseValue)
		price = raw.Mul(raw, decimalShift(int(pool.BaseDecimals)-int(pool.QuoteDecimals)))
	}
	total.Mul(total, decimalShift(-int(pool.QuoteDecimals)))
	return price, total
}

// curvePrice is (quote+quoteAdded)/(base-baseRemoved) in raw units.
// Callers guarantee base > baseRemoved.
func curvePrice(quote, quoteAdded, base, baseRemoved uint64) *big.Rat {
	num := new(big.Int).SetUint64(quote)
	num.Add(num, new(big.Int).SetUint64(quoteAdded))
	den := new(big.Int).SetUint64(base - baseRemoved)
	return new(big.Rat).SetFrac(num, den)
}

// VestingUnlocked returns how much of the locked supply has vested at now.
// Nothing unlocks before the cliff ends; afterwards the amount grows
// linearly over the unlock period.
func VestingUnlocked(v model.VestingSchedule, now time.Time) uint64 {
	if v.TotalLockedAmount == 0 {
		return 0
	}
	ts := now.Unix()
	if ts < 0 {
		return 0
	}
	current := uint64(ts)
	cliffEnd := v.StartTime + v.CliffPeriod
	if current < cliffEnd {
		return 0
	}
	elapsed := current - cliffEnd
	if elapsed >= v.UnlockPeriod {
		return v.TotalLockedAmount
	}
	unlocked := new(big.Int).SetUint64(v.TotalLockedAmount)
	unlocked.Mul(unlocked, new(big.Int).SetUint64(elapsed))
	unlocked.Quo(unlocked, new(big.Int).SetUint64(v.UnlockPeriod))
	return unlocked.Uint64()
}
