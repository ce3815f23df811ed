package dex

import (
	"rayScope/internal/model"
)

// V4PoolSize is the length of an AMM v4 pool account.
const V4PoolSize = 752

const (
	v4Status              = 0
	v4Nonce               = 8
	v4MaxOrder            = 16
	v4Depth               = 24
	v4BaseDecimal         = 32
	v4QuoteDecimal        = 40
	v4State               = 48
	v4ResetFlag           = 56
	v4MinSize             = 64
	v4VolMaxCutRatio      = 72
	v4AmountWaveRatio     = 80
	v4BaseLotSize         = 88
	v4QuoteLotSize        = 96
	v4MinPriceMultiplier  = 104
	v4MaxPriceMultiplier  = 112
	v4SystemDecimalValue  = 120
	v4MinSeparateNum      = 128
	v4MinSeparateDenom    = 136
	v4TradeFeeNumerator   = 144
	v4TradeFeeDenominator = 152
	v4PnlNumerator        = 160
	v4PnlDenominator      = 168
	v4SwapFeeNumerator    = 176
	v4SwapFeeDenominator  = 184
	v4BaseNeedTakePnl     = 192
	v4QuoteNeedTakePnl    = 200
	v4QuoteTotalPnl       = 208
	v4BaseTotalPnl        = 216
	v4PoolOpenTime        = 224
	v4PunishPcAmount      = 232
	v4PunishCoinAmount    = 240
	v4OrderbookInitTime   = 248
	v4SwapBaseInAmount    = 256
	v4SwapQuoteOutAmount  = 272
	v4SwapBase2QuoteFee   = 288
	v4SwapQuoteInAmount   = 296
	v4SwapBaseOutAmount   = 312
	v4SwapQuote2BaseFee   = 328
	v4BaseVault           = 336
	v4QuoteVault          = 368
	v4BaseMint            = 400
	v4QuoteMint           = 432
	v4LpMint              = 464
	v4OpenOrders          = 496
	v4MarketID            = 528
	v4MarketProgramID     = 560
	v4TargetOrders        = 592
	v4WithdrawQueue       = 624
	v4LpVault             = 656
	v4Owner               = 688
	v4LpReserve           = 720
)

// DecodeV4 parses an AMM v4 pool account.
func DecodeV4(data []byte) (*model.V4Pool, error) {
	if len(data) != V4PoolSize {
		return nil, lengthError(model.KindV4, V4PoolSize, len(data))
	}
	l := layout(data)

	baseDecimal := l.u64(v4BaseDecimal)
	if baseDecimal > 255 {
		return nil, fieldError(model.KindV4, "base_decimal", "<= 255", baseDecimal)
	}
	quoteDecimal := l.u64(v4QuoteDecimal)
	if quoteDecimal > 255 {
		return nil, fieldError(model.KindV4, "quote_decimal", "<= 255", quoteDecimal)
	}

	pool := &model.V4Pool{
		Status:       l.u64(v4Status),
		Nonce:        l.u64(v4Nonce),
		MaxOrder:     l.u64(v4MaxOrder),
		Depth:        l.u64(v4Depth),
		BaseDecimal:  uint8(baseDecimal),
		QuoteDecimal: uint8(quoteDecimal),
		State:        l.u64(v4State),
		ResetFlag:    l.u64(v4ResetFlag),
		MinSize:      l.u64(v4MinSize),
		BaseLotSize:  l.u64(v4BaseLotSize),
		QuoteLotSize: l.u64(v4QuoteLotSize),

		VolMaxCutRatio:         l.u64(v4VolMaxCutRatio),
		AmountWaveRatio:        l.u64(v4AmountWaveRatio),
		MinPriceMultiplier:     l.u64(v4MinPriceMultiplier),
		MaxPriceMultiplier:     l.u64(v4MaxPriceMultiplier),
		SystemDecimalValue:     l.u64(v4SystemDecimalValue),
		MinSeparateNumerator:   l.u64(v4MinSeparateNum),
		MinSeparateDenominator: l.u64(v4MinSeparateDenom),

		TradeFeeNumerator:   l.u64(v4TradeFeeNumerator),
		TradeFeeDenominator: l.u64(v4TradeFeeDenominator),
		PnlNumerator:        l.u64(v4PnlNumerator),
		PnlDenominator:      l.u64(v4PnlDenominator),
		SwapFeeNumerator:    l.u64(v4SwapFeeNumerator),
		SwapFeeDenominator:  l.u64(v4SwapFeeDenominator),

		BaseNeedTakePnl:  l.u64(v4BaseNeedTakePnl),
		QuoteNeedTakePnl: l.u64(v4QuoteNeedTakePnl),
		QuoteTotalPnl:    l.u64(v4QuoteTotalPnl),
		BaseTotalPnl:     l.u64(v4BaseTotalPnl),
		PoolOpenTime:     l.u64(v4PoolOpenTime),

		PunishPcAmount:      l.u64(v4PunishPcAmount),
		PunishCoinAmount:    l.u64(v4PunishCoinAmount),
		OrderbookToInitTime: l.u64(v4OrderbookInitTime),

		SwapBaseInAmount:   l.u128(v4SwapBaseInAmount),
		SwapQuoteOutAmount: l.u128(v4SwapQuoteOutAmount),
		SwapBase2QuoteFee:  l.u64(v4SwapBase2QuoteFee),
		SwapQuoteInAmount:  l.u128(v4SwapQuoteInAmount),
		SwapBaseOutAmount:  l.u128(v4SwapBaseOutAmount),
		SwapQuote2BaseFee:  l.u64(v4SwapQuote2BaseFee),

		BaseVault:       l.pubkey(v4BaseVault),
		QuoteVault:      l.pubkey(v4QuoteVault),
		BaseMint:        l.pubkey(v4BaseMint),
		QuoteMint:       l.pubkey(v4QuoteMint),
		LpMint:          l.pubkey(v4LpMint),
		OpenOrders:      l.pubkey(v4OpenOrders),
		MarketID:        l.pubkey(v4MarketID),
		MarketProgramID: l.pubkey(v4MarketProgramID),
		TargetOrders:    l.pubkey(v4TargetOrders),
		WithdrawQueue:   l.pubkey(v4WithdrawQueue),
		LpVault:         l.pubkey(v4LpVault),
		Owner:           l.pubkey(v4Owner),
		LpReserve:       l.u64(v4LpReserve),
	}

	if err := checkFeeRatio("trade_fee", pool.TradeFeeNumerator, pool.TradeFeeDenominator); err != nil {
		return nil, err
	}
	if err := checkFeeRatio("swap_fee", pool.SwapFeeNumerator, pool.SwapFeeDenominator); err != nil {
		return nil, err
	}
	return pool, nil
}

func checkFeeRatio(name string, numerator, denominator uint64) error {
	if denominator == 0 {
		return fieldError(model.KindV4, name+"_denominator", "non-zero", denominator)
	}
	if numerator > denominator {
		return fieldError(model.KindV4, name+"_numerator", "<= denominator", numerator)
	}
	return nil
}
