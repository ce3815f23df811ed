package pricing

import (
	"fmt"
	"math/big"

	"rayScope/internal/model"
)

func deriveCLMM(pool *model.CLMMPool, opts Options) (model.Metrics, error) {
	sqrt := pool.SqrtPriceX64.Big()
	if sqrt.Sign() == 0 {
		return model.Metrics{}, fmt.Errorf("derive clmm price: sqrt price is zero: %w", ErrDivisionByZero)
	}
	shift := decimalShift(int(pool.MintDecimals0) - int(pool.MintDecimals1))

	price := new(big.Rat).SetFrac(new(big.Int).Mul(sqrt, sqrt), q128)
	price.Mul(price, shift)

	tickPrice, _ := powTickBase(pool.TickCurrent).Rat(nil)
	tickPrice.Mul(tickPrice, shift)

	liquidity := pool.Liquidity.Big()
	implied := TickAtSqrtPrice(sqrt)

	metrics := model.Metrics{
		Kind:  model.KindCLMM,
		Price: price,
		CLMM: &model.CLMMMetrics{
			Liquidity:    liquidity,
			SqrtPriceX64: sqrt,
			Tick:         pool.TickCurrent,
			ImpliedTick:  implied,
			TickPrice:    tickPrice,
			VirtualBase:  new(big.Rat).SetFrac(new(big.Int).Mul(liquidity, q64), sqrt),
			VirtualQuote: new(big.Rat).SetFrac(new(big.Int).Mul(liquidity, sqrt), q64),
		},
	}

	drift := int64(implied) - int64(pool.TickCurrent)
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(opts.tickTolerance()) {
		metrics.Warning = fmt.Errorf("stored tick %d, sqrt price implies %d: %w",
			pool.TickCurrent, implied, ErrInconsistentState)
	}
	return metrics, nil
}
