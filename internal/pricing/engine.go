package pricing

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"rayScope/internal/model"
)

var (
	ErrMissingReserves   = errors.New("reserves required for constant-product pool")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInconsistentState = errors.New("inconsistent pool state")
)

// DefaultTickTolerance is how far the stored CLMM tick may drift from the
// tick implied by the sqrt price before a warning is attached.
const DefaultTickTolerance int32 = 1

// Options tunes Derive.
type Options struct {
	// TickTolerance nil selects DefaultTickTolerance. Zero demands the stored
	// tick match the implied tick exactly; negative values count as zero.
	TickTolerance *int32
	// Now is the evaluation time for launch pool vesting. The zero value
	// skips time-dependent figures.
	Now time.Time
}

func (o Options) tickTolerance() int32 {
	if o.TickTolerance == nil {
		return DefaultTickTolerance
	}
	if *o.TickTolerance < 0 {
		return 0
	}
	return *o.TickTolerance
}

// Tolerance returns a TickTolerance value for Options.
func Tolerance(ticks int32) *int32 { return &ticks }

// Derive computes price and liquidity metrics for a decoded pool. Reserves
// are required for constant-product pools and ignored otherwise.
func Derive(pool model.Pool, reserves *model.Reserves, opts Options) (model.Metrics, error) {
	switch p := pool.(type) {
	case *model.V4Pool, *model.CPMMPool:
		return deriveConstantProduct(p, reserves)
	case *model.CLMMPool:
		return deriveCLMM(p, opts)
	case *model.LaunchpadPool:
		return deriveLaunchpad(p, opts)
	default:
		return model.Metrics{}, fmt.Errorf("derive metrics for %T: unsupported pool", pool)
	}
}

func deriveConstantProduct(pool model.Pool, reserves *model.Reserves) (model.Metrics, error) {
	if reserves == nil {
		return model.Metrics{}, fmt.Errorf("derive %s price: %w", pool.Kind(), ErrMissingReserves)
	}
	if reserves.Base.Amount == 0 {
		return model.Metrics{}, fmt.Errorf("derive %s price: base reserve is zero: %w", pool.Kind(), ErrDivisionByZero)
	}

	price := new(big.Rat).SetFrac(
		new(big.Int).SetUint64(reserves.Quote.Amount),
		new(big.Int).SetUint64(reserves.Base.Amount),
	)
	price.Mul(price, decimalShift(int(reserves.Base.Decimals)-int(reserves.Quote.Decimals)))

	res := *reserves
	return model.Metrics{
		Kind:     pool.Kind(),
		Price:    price,
		Reserves: &res,
	}, nil
}

// decimalShift returns 10^exp as a rational; exp may be negative.
func decimalShift(exp int) *big.Rat {
	if exp == 0 {
		return big.NewRat(1, 1)
	}
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if exp > 0 {
		return new(big.Rat).SetInt(pow)
	}
	return new(big.Rat).SetFrac(big.NewInt(1), pow)
}
