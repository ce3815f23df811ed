package model

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// RewardSlots is the number of reward infos a CLMM pool carries.
const RewardSlots = 3

// CLMMPool is a concentrated-liquidity pool. Token 0 is the base side.
type CLMMPool struct {
	Bump           uint8            `json:"bump"`
	AmmConfig      solana.PublicKey `json:"amm_config"`
	Owner          solana.PublicKey `json:"owner"`
	TokenMint0     solana.PublicKey `json:"token_mint0"`
	TokenMint1     solana.PublicKey `json:"token_mint1"`
	TokenVault0    solana.PublicKey `json:"token_vault0"`
	TokenVault1    solana.PublicKey `json:"token_vault1"`
	ObservationKey solana.PublicKey `json:"observation_key"`
	MintDecimals0  uint8            `json:"mint_decimals0"`
	MintDecimals1  uint8            `json:"mint_decimals1"`
	TickSpacing    uint16           `json:"tick_spacing"`

	Liquidity    uint128.Uint128 `json:"-"`
	SqrtPriceX64 uint128.Uint128 `json:"-"`
	TickCurrent  int32           `json:"tick_current"`

	FeeGrowthGlobal0X64 uint128.Uint128 `json:"-"`
	FeeGrowthGlobal1X64 uint128.Uint128 `json:"-"`
	ProtocolFeesToken0  uint64          `json:"protocol_fees_token0"`
	ProtocolFeesToken1  uint64          `json:"protocol_fees_token1"`

	SwapInAmountToken0  uint128.Uint128 `json:"-"`
	SwapOutAmountToken1 uint128.Uint128 `json:"-"`
	SwapInAmountToken1  uint128.Uint128 `json:"-"`
	SwapOutAmountToken0 uint128.Uint128 `json:"-"`

	Status          uint8                   `json:"status"`
	RewardInfos     [RewardSlots]RewardInfo `json:"reward_infos"`
	TickArrayBitmap [16]uint64              `json:"tick_array_bitmap"`

	TotalFeesToken0        uint64 `json:"total_fees_token0"`
	TotalFeesClaimedToken0 uint64 `json:"total_fees_claimed_token0"`
	TotalFeesToken1        uint64 `json:"total_fees_token1"`
	TotalFeesClaimedToken1 uint64 `json:"total_fees_claimed_token1"`
	FundFeesToken0         uint64 `json:"fund_fees_token0"`
	FundFeesToken1         uint64 `json:"fund_fees_token1"`
	OpenTime               uint64 `json:"open_time"`
	RecentEpoch            uint64 `json:"recent_epoch"`
}

func (*CLMMPool) Kind() Kind { return KindCLMM }

func (p *CLMMPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.TokenMint0, p.TokenMint1
}

func (p *CLMMPool) Vaults() (solana.PublicKey, solana.PublicKey) {
	return p.TokenVault0, p.TokenVault1
}

func (*CLMMPool) sealed() {}

func (p CLMMPool) MarshalJSON() ([]byte, error) {
	type alias CLMMPool
	return marshalWithWide(alias(p), map[string]uint128.Uint128{
		"liquidity":              p.Liquidity,
		"sqrt_price_x64":         p.SqrtPriceX64,
		"fee_growth_global0_x64": p.FeeGrowthGlobal0X64,
		"fee_growth_global1_x64": p.FeeGrowthGlobal1X64,
		"swap_in_amount_token0":  p.SwapInAmountToken0,
		"swap_out_amount_token1": p.SwapOutAmountToken1,
		"swap_in_amount_token1":  p.SwapInAmountToken1,
		"swap_out_amount_token0": p.SwapOutAmountToken0,
	})
}

// RewardInfo is one liquidity-mining reward slot of a CLMM pool.
type RewardInfo struct {
	RewardState           uint8            `json:"reward_state"`
	OpenTime              uint64           `json:"open_time"`
	EndTime               uint64           `json:"end_time"`
	LastUpdateTime        uint64           `json:"last_update_time"`
	EmissionsPerSecondX64 uint128.Uint128  `json:"-"`
	RewardTotalEmissioned uint64           `json:"reward_total_emissioned"`
	RewardClaimed         uint64           `json:"reward_claimed"`
	TokenMint             solana.PublicKey `json:"token_mint"`
	TokenVault            solana.PublicKey `json:"token_vault"`
	Authority             solana.PublicKey `json:"authority"`
	RewardGrowthGlobalX64 uint128.Uint128  `json:"-"`
}

func (r RewardInfo) MarshalJSON() ([]byte, error) {
	type alias RewardInfo
	return marshalWithWide(alias(r), map[string]uint128.Uint128{
		"emissions_per_second_x64": r.EmissionsPerSecondX64,
		"reward_growth_global_x64": r.RewardGrowthGlobalX64,
	})
}

// Initialized reports whether the reward slot was ever configured.
func (r RewardInfo) Initialized() bool {
	return r.RewardState != 0
}

