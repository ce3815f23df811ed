package dex

import (
	"lukechampine.com/uint128"

	"rayScope/internal/model"
)

// CLMMPoolSize is the length of a concentrated-liquidity pool account.
const CLMMPoolSize = 1544

const (
	MinTick = -443636
	MaxTick = 443636
)

var (
	// MinSqrtPriceX64 and MaxSqrtPriceX64 are the sqrt prices at MinTick and MaxTick.
	MinSqrtPriceX64 = uint128.From64(4295048016)
	MaxSqrtPriceX64 = uint128.New(9537527425331189659, 4294886577)
)

const (
	clmmBump                   = 8
	clmmAmmConfig              = 9
	clmmOwner                  = 41
	clmmTokenMint0             = 73
	clmmTokenMint1             = 105
	clmmTokenVault0            = 137
	clmmTokenVault1            = 169
	clmmObservationKey         = 201
	clmmMintDecimals0          = 233
	clmmMintDecimals1          = 234
	clmmTickSpacing            = 235
	clmmLiquidity              = 237
	clmmSqrtPriceX64           = 253
	clmmTickCurrent            = 269
	clmmFeeGrowthGlobal0       = 277
	clmmFeeGrowthGlobal1       = 293
	clmmProtocolFeesToken0     = 309
	clmmProtocolFeesToken1     = 317
	clmmSwapInAmountToken0     = 325
	clmmSwapOutAmountToken1    = 341
	clmmSwapInAmountToken1     = 357
	clmmSwapOutAmountToken0    = 373
	clmmStatus                 = 389
	clmmRewardInfos            = 397
	clmmTickArrayBitmap        = 904
	clmmTotalFeesToken0        = 1032
	clmmTotalFeesClaimedToken0 = 1040
	clmmTotalFeesToken1        = 1048
	clmmTotalFeesClaimedToken1 = 1056
	clmmFundFeesToken0         = 1064
	clmmFundFeesToken1         = 1072
	clmmOpenTime               = 1080
	clmmRecentEpoch            = 1088
)

// offsets inside one reward info slot
const (
	rewardInfoSize        = 169
	rewardState           = 0
	rewardOpenTime        = 1
	rewardEndTime         = 9
	rewardLastUpdateTime  = 17
	rewardEmissions       = 25
	rewardTotalEmissioned = 41
	rewardClaimed         = 49
	rewardTokenMint       = 57
	rewardTokenVault      = 89
	rewardAuthority       = 121
	rewardGrowthGlobal    = 153
)

// DecodeCLMM parses a concentrated-liquidity pool account.
func DecodeCLMM(data []byte) (*model.CLMMPool, error) {
	if len(data) != CLMMPoolSize {
		return nil, lengthError(model.KindCLMM, CLMMPoolSize, len(data))
	}
	if !hasDiscriminator(data, poolStateDiscriminator) {
		return nil, discriminatorError(model.KindCLMM, poolStateDiscriminator[:], data[:discriminatorSize])
	}
	l := layout(data)

	tickSpacing := l.u16(clmmTickSpacing)
	if tickSpacing == 0 {
		return nil, fieldError(model.KindCLMM, "tick_spacing", "non-zero", tickSpacing)
	}
	tick := l.i32(clmmTickCurrent)
	if tick < MinTick || tick > MaxTick {
		return nil, fieldError(model.KindCLMM, "tick_current", "within [-443636, 443636]", tick)
	}
	sqrtPrice := l.u128(clmmSqrtPriceX64)
	if sqrtPrice.Cmp(MinSqrtPriceX64) < 0 || sqrtPrice.Cmp(MaxSqrtPriceX64) > 0 {
		return nil, fieldError(model.KindCLMM, "sqrt_price_x64", "within sqrt price bounds", sqrtPrice)
	}

	pool := &model.CLMMPool{
		Bump:           l.u8(clmmBump),
		AmmConfig:      l.pubkey(clmmAmmConfig),
		Owner:          l.pubkey(clmmOwner),
		TokenMint0:     l.pubkey(clmmTokenMint0),
		TokenMint1:     l.pubkey(clmmTokenMint1),
		TokenVault0:    l.pubkey(clmmTokenVault0),
		TokenVault1:    l.pubkey(clmmTokenVault1),
		ObservationKey: l.pubkey(clmmObservationKey),
		MintDecimals0:  l.u8(clmmMintDecimals0),
		MintDecimals1:  l.u8(clmmMintDecimals1),
		TickSpacing:    tickSpacing,

		Liquidity:    l.u128(clmmLiquidity),
		SqrtPriceX64: sqrtPrice,
		TickCurrent:  tick,

		FeeGrowthGlobal0X64: l.u128(clmmFeeGrowthGlobal0),
		FeeGrowthGlobal1X64: l.u128(clmmFeeGrowthGlobal1),
		ProtocolFeesToken0:  l.u64(clmmProtocolFeesToken0),
		ProtocolFeesToken1:  l.u64(clmmProtocolFeesToken1),

		SwapInAmountToken0:  l.u128(clmmSwapInAmountToken0),
		SwapOutAmountToken1: l.u128(clmmSwapOutAmountToken1),
		SwapInAmountToken1:  l.u128(clmmSwapInAmountToken1),
		SwapOutAmountToken0: l.u128(clmmSwapOutAmountToken0),

		Status: l.u8(clmmStatus),

		TotalFeesToken0:        l.u64(clmmTotalFeesToken0),
		TotalFeesClaimedToken0: l.u64(clmmTotalFeesClaimedToken0),
		TotalFeesToken1:        l.u64(clmmTotalFeesToken1),
		TotalFeesClaimedToken1: l.u64(clmmTotalFeesClaimedToken1),
		FundFeesToken0:         l.u64(clmmFundFeesToken0),
		FundFeesToken1:         l.u64(clmmFundFeesToken1),
		OpenTime:               l.u64(clmmOpenTime),
		RecentEpoch:            l.u64(clmmRecentEpoch),
	}

	for i := 0; i < model.RewardSlots; i++ {
		pool.RewardInfos[i] = decodeRewardInfo(layout(data[clmmRewardInfos+i*rewardInfoSize:]))
	}
	for i := range pool.TickArrayBitmap {
		pool.TickArrayBitmap[i] = l.u64(clmmTickArrayBitmap + i*8)
	}
	return pool, nil
}

func decodeRewardInfo(l layout) model.RewardInfo {
	return model.RewardInfo{
		RewardState:           l.u8(rewardState),
		OpenTime:              l.u64(rewardOpenTime),
		EndTime:               l.u64(rewardEndTime),
		LastUpdateTime:        l.u64(rewardLastUpdateTime),
		EmissionsPerSecondX64: l.u128(rewardEmissions),
		RewardTotalEmissioned: l.u64(rewardTotalEmissioned),
		RewardClaimed:         l.u64(rewardClaimed),
		TokenMint:             l.pubkey(rewardTokenMint),
		TokenVault:            l.pubkey(rewardTokenVault),
		Authority:             l.pubkey(rewardAuthority),
		RewardGrowthGlobalX64: l.u128(rewardGrowthGlobal),
	}
}
