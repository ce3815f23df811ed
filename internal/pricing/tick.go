package pricing

import (
	"math"
	"math/big"
)

const floatPrec = 256

var (
	q64      = new(big.Int).Lsh(big.NewInt(1), 64)
	q128     = new(big.Int).Lsh(big.NewInt(1), 128)
	tickBase = mustParseFloat("1.0001")
	log2Base = math.Log2(1.0001)
)

func mustParseFloat(text string) *big.Float {
	f, _, err := big.ParseFloat(text, 10, floatPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}

// SqrtPriceX64AtTick returns sqrt(1.0001^tick) in Q64.64 fixed point,
// rounded down.
func SqrtPriceX64AtTick(tick int32) *big.Int {
	price := powTickBase(tick)
	sqrt := new(big.Float).SetPrec(floatPrec).Sqrt(price)
	sqrt.Mul(sqrt, new(big.Float).SetPrec(floatPrec).SetInt(q64))
	out, _ := sqrt.Int(nil)
	return out
}

// TickAtSqrtPrice returns the greatest tick whose sqrt price does not
// exceed sqrtPriceX64. sqrtPriceX64 must be positive.
func TickAtSqrtPrice(sqrtPriceX64 *big.Int) int32 {
	f := new(big.Float).SetPrec(floatPrec).SetInt(sqrtPriceX64)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	log2Sqrt := float64(exp) + math.Log2(m) - 64

	tick := int32(math.Floor(2 * log2Sqrt / log2Base))
	for SqrtPriceX64AtTick(tick).Cmp(sqrtPriceX64) > 0 {
		tick--
	}
	for SqrtPriceX64AtTick(tick+1).Cmp(sqrtPriceX64) <= 0 {
		tick++
	}
	return tick
}

// powTickBase returns 1.0001^tick.
func powTickBase(tick int32) *big.Float {
	n := int64(tick)
	if n < 0 {
		n = -n
	}
	result := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	base := new(big.Float).SetPrec(floatPrec).Set(tickBase)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if tick < 0 {
		result.Quo(new(big.Float).SetPrec(floatPrec).SetInt64(1), result)
	}
	return result
}
