package dex

import (
	"rayScope/internal/model"
)

const (
	CPMMPoolSize  = 637
	AmmConfigSize = 236
)

const (
	cpmmAmmConfig          = 8
	cpmmPoolCreator        = 40
	cpmmToken0Vault        = 72
	cpmmToken1Vault        = 104
	cpmmLpMint             = 136
	cpmmToken0Mint         = 168
	cpmmToken1Mint         = 200
	cpmmToken0Program      = 232
	cpmmToken1Program      = 264
	cpmmObservationKey     = 296
	cpmmAuthBump           = 328
	cpmmStatus             = 329
	cpmmLpMintDecimals     = 330
	cpmmMint0Decimals      = 331
	cpmmMint1Decimals      = 332
	cpmmLpSupply           = 333
	cpmmProtocolFeesToken0 = 341
	cpmmProtocolFeesToken1 = 349
	cpmmFundFeesToken0     = 357
	cpmmFundFeesToken1     = 365
	cpmmOpenTime           = 373
	cpmmRecentEpoch        = 381
	cpmmCreatorFeeOn       = 389
	cpmmEnableCreatorFee   = 390
	cpmmCreatorFeesToken0  = 397
	cpmmCreatorFeesToken1  = 405
)

const (
	cfgBump              = 8
	cfgDisableCreatePool = 9
	cfgIndex             = 10
	cfgTradeFeeRate      = 12
	cfgProtocolFeeRate   = 20
	cfgFundFeeRate       = 28
	cfgCreatePoolFee     = 36
	cfgProtocolOwner     = 44
	cfgFundOwner         = 76
	cfgCreatorFeeRate    = 108
)

// DecodeCPMM parses a CPMM pool account. FeeConfig is left nil.
func DecodeCPMM(data []byte) (*model.CPMMPool, error) {
	if len(data) != CPMMPoolSize {
		return nil, lengthError(model.KindCPMM, CPMMPoolSize, len(data))
	}
	if !hasDiscriminator(data, poolStateDiscriminator) {
		return nil, discriminatorError(model.KindCPMM, poolStateDiscriminator[:], data[:discriminatorSize])
	}
	l := layout(data)

	return &model.CPMMPool{
		AmmConfig:      l.pubkey(cpmmAmmConfig),
		PoolCreator:    l.pubkey(cpmmPoolCreator),
		Token0Vault:    l.pubkey(cpmmToken0Vault),
		Token1Vault:    l.pubkey(cpmmToken1Vault),
		LpMint:         l.pubkey(cpmmLpMint),
		Token0Mint:     l.pubkey(cpmmToken0Mint),
		Token1Mint:     l.pubkey(cpmmToken1Mint),
		Token0Program:  l.pubkey(cpmmToken0Program),
		Token1Program:  l.pubkey(cpmmToken1Program),
		ObservationKey: l.pubkey(cpmmObservationKey),

		AuthBump:       l.u8(cpmmAuthBump),
		Status:         l.u8(cpmmStatus),
		LpMintDecimals: l.u8(cpmmLpMintDecimals),
		Mint0Decimals:  l.u8(cpmmMint0Decimals),
		Mint1Decimals:  l.u8(cpmmMint1Decimals),

		LpSupply:           l.u64(cpmmLpSupply),
		ProtocolFeesToken0: l.u64(cpmmProtocolFeesToken0),
		ProtocolFeesToken1: l.u64(cpmmProtocolFeesToken1),
		FundFeesToken0:     l.u64(cpmmFundFeesToken0),
		FundFeesToken1:     l.u64(cpmmFundFeesToken1),
		OpenTime:           l.u64(cpmmOpenTime),
		RecentEpoch:        l.u64(cpmmRecentEpoch),
		CreatorFeeOn:       l.u8(cpmmCreatorFeeOn),
		EnableCreatorFee:   l.flag(cpmmEnableCreatorFee),
		CreatorFeesToken0:  l.u64(cpmmCreatorFeesToken0),
		CreatorFeesToken1:  l.u64(cpmmCreatorFeesToken1),
	}, nil
}

// DecodeAmmConfig parses the fee configuration account a CPMM pool points at.
func DecodeAmmConfig(data []byte) (*model.AmmConfig, error) {
	if len(data) != AmmConfigSize {
		return nil, lengthError(model.KindCPMM, AmmConfigSize, len(data))
	}
	if !hasDiscriminator(data, ammConfigDiscriminator) {
		return nil, discriminatorError(model.KindCPMM, ammConfigDiscriminator[:], data[:discriminatorSize])
	}
	l := layout(data)

	cfg := &model.AmmConfig{
		Bump:              l.u8(cfgBump),
		DisableCreatePool: l.flag(cfgDisableCreatePool),
		Index:             l.u16(cfgIndex),
		TradeFeeRate:      l.u64(cfgTradeFeeRate),
		ProtocolFeeRate:   l.u64(cfgProtocolFeeRate),
		FundFeeRate:       l.u64(cfgFundFeeRate),
		CreatePoolFee:     l.u64(cfgCreatePoolFee),
		ProtocolOwner:     l.pubkey(cfgProtocolOwner),
		FundOwner:         l.pubkey(cfgFundOwner),
		CreatorFeeRate:    l.u64(cfgCreatorFeeRate),
	}

	rates := []struct {
		name  string
		value uint64
	}{
		{"trade_fee_rate", cfg.TradeFeeRate},
		{"protocol_fee_rate", cfg.ProtocolFeeRate},
		{"fund_fee_rate", cfg.FundFeeRate},
		{"creator_fee_rate", cfg.CreatorFeeRate},
	}
	for _, rate := range rates {
		if rate.value > model.FeeRateDenominator {
			return nil, fieldError(model.KindCPMM, rate.name, "<= 1000000", rate.value)
		}
	}
	return cfg, nil
}
