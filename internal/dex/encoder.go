package dex

import (
	"rayScope/internal/model"
)

// The Encode functions write a pool back into its account layout. Decoding
// the result yields the same pool; unused padding is zero.

func EncodeV4(p *model.V4Pool) []byte {
	l := make(layout, V4PoolSize)
	l.putU64(v4Status, p.Status)
	l.putU64(v4Nonce, p.Nonce)
	l.putU64(v4MaxOrder, p.MaxOrder)
	l.putU64(v4Depth, p.Depth)
	l.putU64(v4BaseDecimal, uint64(p.BaseDecimal))
	l.putU64(v4QuoteDecimal, uint64(p.QuoteDecimal))
	l.putU64(v4State, p.State)
	l.putU64(v4ResetFlag, p.ResetFlag)
	l.putU64(v4MinSize, p.MinSize)
	l.putU64(v4BaseLotSize, p.BaseLotSize)
	l.putU64(v4QuoteLotSize, p.QuoteLotSize)
	l.putU64(v4VolMaxCutRatio, p.VolMaxCutRatio)
	l.putU64(v4AmountWaveRatio, p.AmountWaveRatio)
	l.putU64(v4MinPriceMultiplier, p.MinPriceMultiplier)
	l.putU64(v4MaxPriceMultiplier, p.MaxPriceMultiplier)
	l.putU64(v4SystemDecimalValue, p.SystemDecimalValue)
	l.putU64(v4MinSeparateNum, p.MinSeparateNumerator)
	l.putU64(v4MinSeparateDenom, p.MinSeparateDenominator)
	l.putU64(v4TradeFeeNumerator, p.TradeFeeNumerator)
	l.putU64(v4TradeFeeDenominator, p.TradeFeeDenominator)
	l.putU64(v4PnlNumerator, p.PnlNumerator)
	l.putU64(v4PnlDenominator, p.PnlDenominator)
	l.putU64(v4SwapFeeNumerator, p.SwapFeeNumerator)
	l.putU64(v4SwapFeeDenominator, p.SwapFeeDenominator)
	l.putU64(v4BaseNeedTakePnl, p.BaseNeedTakePnl)
	l.putU64(v4QuoteNeedTakePnl, p.QuoteNeedTakePnl)
	l.putU64(v4QuoteTotalPnl, p.QuoteTotalPnl)
	l.putU64(v4BaseTotalPnl, p.BaseTotalPnl)
	l.putU64(v4PoolOpenTime, p.PoolOpenTime)
	l.putU64(v4PunishPcAmount, p.PunishPcAmount)
	l.putU64(v4PunishCoinAmount, p.PunishCoinAmount)
	l.putU64(v4OrderbookInitTime, p.OrderbookToInitTime)
	l.putU128(v4SwapBaseInAmount, p.SwapBaseInAmount)
	l.putU128(v4SwapQuoteOutAmount, p.SwapQuoteOutAmount)
	l.putU64(v4SwapBase2QuoteFee, p.SwapBase2QuoteFee)
	l.putU128(v4SwapQuoteInAmount, p.SwapQuoteInAmount)
	l.putU128(v4SwapBaseOutAmount, p.SwapBaseOutAmount)
	l.putU64(v4SwapQuote2BaseFee, p.SwapQuote2BaseFee)
	l.putPubkey(v4BaseVault, p.BaseVault)
	l.putPubkey(v4QuoteVault, p.QuoteVault)
	l.putPubkey(v4BaseMint, p.BaseMint)
	l.putPubkey(v4QuoteMint, p.QuoteMint)
	l.putPubkey(v4LpMint, p.LpMint)
	l.putPubkey(v4OpenOrders, p.OpenOrders)
	l.putPubkey(v4MarketID, p.MarketID)
	l.putPubkey(v4MarketProgramID, p.MarketProgramID)
	l.putPubkey(v4TargetOrders, p.TargetOrders)
	l.putPubkey(v4WithdrawQueue, p.WithdrawQueue)
	l.putPubkey(v4LpVault, p.LpVault)
	l.putPubkey(v4Owner, p.Owner)
	l.putU64(v4LpReserve, p.LpReserve)
	return l
}

func EncodeCPMM(p *model.CPMMPool) []byte {
	l := make(layout, CPMMPoolSize)
	copy(l, poolStateDiscriminator[:])
	l.putPubkey(cpmmAmmConfig, p.AmmConfig)
	l.putPubkey(cpmmPoolCreator, p.PoolCreator)
	l.putPubkey(cpmmToken0Vault, p.Token0Vault)
	l.putPubkey(cpmmToken1Vault, p.Token1Vault)
	l.putPubkey(cpmmLpMint, p.LpMint)
	l.putPubkey(cpmmToken0Mint, p.Token0Mint)
	l.putPubkey(cpmmToken1Mint, p.Token1Mint)
	l.putPubkey(cpmmToken0Program, p.Token0Program)
	l.putPubkey(cpmmToken1Program, p.Token1Program)
	l.putPubkey(cpmmObservationKey, p.ObservationKey)
	l.putU8(cpmmAuthBump, p.AuthBump)
	l.putU8(cpmmStatus, p.Status)
	l.putU8(cpmmLpMintDecimals, p.LpMintDecimals)
	l.putU8(cpmmMint0Decimals, p.Mint0Decimals)
	l.putU8(cpmmMint1Decimals, p.Mint1Decimals)
	l.putU64(cpmmLpSupply, p.LpSupply)
	l.putU64(cpmmProtocolFeesToken0, p.ProtocolFeesToken0)
	l.putU64(cpmmProtocolFeesToken1, p.ProtocolFeesToken1)
	l.putU64(cpmmFundFeesToken0, p.FundFeesToken0)
	l.putU64(cpmmFundFeesToken1, p.FundFeesToken1)
	l.putU64(cpmmOpenTime, p.OpenTime)
	l.putU64(cpmmRecentEpoch, p.RecentEpoch)
	l.putU8(cpmmCreatorFeeOn, p.CreatorFeeOn)
	l.putFlag(cpmmEnableCreatorFee, p.EnableCreatorFee)
	l.putU64(cpmmCreatorFeesToken0, p.CreatorFeesToken0)
	l.putU64(cpmmCreatorFeesToken1, p.CreatorFeesToken1)
	return l
}

func EncodeAmmConfig(c *model.AmmConfig) []byte {
	l := make(layout, AmmConfigSize)
	copy(l, ammConfigDiscriminator[:])
	l.putU8(cfgBump, c.Bump)
	l.putFlag(cfgDisableCreatePool, c.DisableCreatePool)
	l.putU16(cfgIndex, c.Index)
	l.putU64(cfgTradeFeeRate, c.TradeFeeRate)
	l.putU64(cfgProtocolFeeRate, c.ProtocolFeeRate)
	l.putU64(cfgFundFeeRate, c.FundFeeRate)
	l.putU64(cfgCreatePoolFee, c.CreatePoolFee)
	l.putPubkey(cfgProtocolOwner, c.ProtocolOwner)
	l.putPubkey(cfgFundOwner, c.FundOwner)
	l.putU64(cfgCreatorFeeRate, c.CreatorFeeRate)
	return l
}

func EncodeCLMM(p *model.CLMMPool) []byte {
	l := make(layout, CLMMPoolSize)
	copy(l, poolStateDiscriminator[:])
	l.putU8(clmmBump, p.Bump)
	l.putPubkey(clmmAmmConfig, p.AmmConfig)
	l.putPubkey(clmmOwner, p.Owner)
	l.putPubkey(clmmTokenMint0, p.TokenMint0)
	l.putPubkey(clmmTokenMint1, p.TokenMint1)
	l.putPubkey(clmmTokenVault0, p.TokenVault0)
	l.putPubkey(clmmTokenVault1, p.TokenVault1)
	l.putPubkey(clmmObservationKey, p.ObservationKey)
	l.putU8(clmmMintDecimals0, p.MintDecimals0)
	l.putU8(clmmMintDecimals1, p.MintDecimals1)
	l.putU16(clmmTickSpacing, p.TickSpacing)
	l.putU128(clmmLiquidity, p.Liquidity)
	l.putU128(clmmSqrtPriceX64, p.SqrtPriceX64)
	l.putI32(clmmTickCurrent, p.TickCurrent)
	l.putU128(clmmFeeGrowthGlobal0, p.FeeGrowthGlobal0X64)
	l.putU128(clmmFeeGrowthGlobal1, p.FeeGrowthGlobal1X64)
	l.putU64(clmmProtocolFeesToken0, p.ProtocolFeesToken0)
	l.putU64(clmmProtocolFeesToken1, p.ProtocolFeesToken1)
	l.putU128(clmmSwapInAmountToken0, p.SwapInAmountToken0)
	l.putU128(clmmSwapOutAmountToken1, p.SwapOutAmountToken1)
	l.putU128(clmmSwapInAmountToken1, p.SwapInAmountToken1)
	l.putU128(clmmSwapOutAmountToken0, p.SwapOutAmountToken0)
	l.putU8(clmmStatus, p.Status)
	for i, reward := range p.RewardInfos {
		encodeRewardInfo(l[clmmRewardInfos+i*rewardInfoSize:], reward)
	}
	for i, word := range p.TickArrayBitmap {
		l.putU64(clmmTickArrayBitmap+i*8, word)
	}
	l.putU64(clmmTotalFeesToken0, p.TotalFeesToken0)
	l.putU64(clmmTotalFeesClaimedToken0, p.TotalFeesClaimedToken0)
	l.putU64(clmmTotalFeesToken1, p.TotalFeesToken1)
	l.putU64(clmmTotalFeesClaimedToken1, p.TotalFeesClaimedToken1)
	l.putU64(clmmFundFeesToken0, p.FundFeesToken0)
	l.putU64(clmmFundFeesToken1, p.FundFeesToken1)
	l.putU64(clmmOpenTime, p.OpenTime)
	l.putU64(clmmRecentEpoch, p.RecentEpoch)
	return l
}

func encodeRewardInfo(l layout, r model.RewardInfo) {
	l.putU8(rewardState, r.RewardState)
	l.putU64(rewardOpenTime, r.OpenTime)
	l.putU64(rewardEndTime, r.EndTime)
	l.putU64(rewardLastUpdateTime, r.LastUpdateTime)
	l.putU128(rewardEmissions, r.EmissionsPerSecondX64)
	l.putU64(rewardTotalEmissioned, r.RewardTotalEmissioned)
	l.putU64(rewardClaimed, r.RewardClaimed)
	l.putPubkey(rewardTokenMint, r.TokenMint)
	l.putPubkey(rewardTokenVault, r.TokenVault)
	l.putPubkey(rewardAuthority, r.Authority)
	l.putU128(rewardGrowthGlobal, r.RewardGrowthGlobalX64)
}

func EncodeLaunchpad(p *model.LaunchpadPool) []byte {
	l := make(layout, LaunchpadPoolSize)
	copy(l, poolStateDiscriminator[:])
	l.putU64(lpEpoch, p.Epoch)
	l.putU8(lpAuthBump, p.AuthBump)
	l.putU8(lpStatus, uint8(p.Status))
	l.putU8(lpBaseDecimals, p.BaseDecimals)
	l.putU8(lpQuoteDecimals, p.QuoteDecimals)
	l.putU8(lpMigrateType, uint8(p.MigrateType))
	l.putU64(lpSupply, p.Supply)
	l.putU64(lpTotalBaseSell, p.TotalBaseSell)
	l.putU64(lpVirtualBase, p.VirtualBase)
	l.putU64(lpVirtualQuote, p.VirtualQuote)
	l.putU64(lpRealBase, p.RealBase)
	l.putU64(lpRealQuote, p.RealQuote)
	l.putU64(lpTotalQuoteFundRaising, p.TotalQuoteFundRaising)
	l.putU64(lpQuoteProtocolFee, p.QuoteProtocolFee)
	l.putU64(lpPlatformFee, p.PlatformFee)
	l.putU64(lpMigrateFee, p.MigrateFee)
	l.putU64(lpVestingTotalLocked, p.Vesting.TotalLockedAmount)
	l.putU64(lpVestingCliff, p.Vesting.CliffPeriod)
	l.putU64(lpVestingUnlock, p.Vesting.UnlockPeriod)
	l.putU64(lpVestingStart, p.Vesting.StartTime)
	l.putU64(lpVestingAllocated, p.Vesting.AllocatedShareAmount)
	l.putPubkey(lpGlobalConfig, p.GlobalConfig)
	l.putPubkey(lpPlatformConfig, p.PlatformConfig)
	l.putPubkey(lpBaseMint, p.BaseMint)
	l.putPubkey(lpQuoteMint, p.QuoteMint)
	l.putPubkey(lpBaseVault, p.BaseVault)
	l.putPubkey(lpQuoteVault, p.QuoteVault)
	l.putPubkey(lpCreator, p.Creator)
	var flags uint8
	if p.BaseToken2022 {
		flags |= baseToken2022Flag
	}
	if p.QuoteToken2022 {
		flags |= quoteToken2022Flag
	}
	l.putU8(lpTokenProgramFlag, flags)
	l.putU8(lpCreatorFeeOn, uint8(p.CreatorFeeOn))
	return l
}
