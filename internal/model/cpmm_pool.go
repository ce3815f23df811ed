package model

import (
	"github.com/gagliardetto/solana-go"
)

// FeeRateDenominator is the scale of AmmConfig fee rates (parts per million).
const FeeRateDenominator = 1_000_000

// CPMMPool is a constant-product pool whose fee rates live in a separate
// AmmConfig account referenced by AmmConfig.
type CPMMPool struct {
	AmmConfig      solana.PublicKey `json:"amm_config"`
	PoolCreator    solana.PublicKey `json:"pool_creator"`
	Token0Vault    solana.PublicKey `json:"token0_vault"`
	Token1Vault    solana.PublicKey `json:"token1_vault"`
	LpMint         solana.PublicKey `json:"lp_mint"`
	Token0Mint     solana.PublicKey `json:"token0_mint"`
	Token1Mint     solana.PublicKey `json:"token1_mint"`
	Token0Program  solana.PublicKey `json:"token0_program"`
	Token1Program  solana.PublicKey `json:"token1_program"`
	ObservationKey solana.PublicKey `json:"observation_key"`

	AuthBump       uint8 `json:"auth_bump"`
	Status         uint8 `json:"status"`
	LpMintDecimals uint8 `json:"lp_mint_decimals"`
	Mint0Decimals  uint8 `json:"mint0_decimals"`
	Mint1Decimals  uint8 `json:"mint1_decimals"`

	LpSupply           uint64 `json:"lp_supply"`
	ProtocolFeesToken0 uint64 `json:"protocol_fees_token0"`
	ProtocolFeesToken1 uint64 `json:"protocol_fees_token1"`
	FundFeesToken0     uint64 `json:"fund_fees_token0"`
	FundFeesToken1     uint64 `json:"fund_fees_token1"`
	OpenTime           uint64 `json:"open_time"`
	RecentEpoch        uint64 `json:"recent_epoch"`
	CreatorFeeOn       uint8  `json:"creator_fee_on"`
	EnableCreatorFee   bool   `json:"enable_creator_fee"`
	CreatorFeesToken0  uint64 `json:"creator_fees_token0"`
	CreatorFeesToken1  uint64 `json:"creator_fees_token1"`

	// FeeConfig is nil until the referenced AmmConfig account is loaded.
	FeeConfig *AmmConfig `json:"fee_config,omitempty"`
}

func (*CPMMPool) Kind() Kind { return KindCPMM }

func (p *CPMMPool) Mints() (solana.PublicKey, solana.PublicKey) { return p.Token0Mint, p.Token1Mint }

func (p *CPMMPool) Vaults() (solana.PublicKey, solana.PublicKey) {
	return p.Token0Vault, p.Token1Vault
}

func (*CPMMPool) sealed() {}

// WithFeeConfig returns a copy of the pool carrying cfg.
func (p *CPMMPool) WithFeeConfig(cfg AmmConfig) *CPMMPool {
	out := *p
	out.FeeConfig = &cfg
	return &out
}

// AmmConfig is the CPMM fee configuration account.
type AmmConfig struct {
	Bump              uint8            `json:"bump"`
	DisableCreatePool bool             `json:"disable_create_pool"`
	Index             uint16           `json:"index"`
	TradeFeeRate      uint64           `json:"trade_fee_rate"`
	ProtocolFeeRate   uint64           `json:"protocol_fee_rate"`
	FundFeeRate       uint64           `json:"fund_fee_rate"`
	CreatePoolFee     uint64           `json:"create_pool_fee"`
	ProtocolOwner     solana.PublicKey `json:"protocol_owner"`
	FundOwner         solana.PublicKey `json:"fund_owner"`
	CreatorFeeRate    uint64           `json:"creator_fee_rate"`
}

// TradeFeeBps is the trade fee in basis points, rounded down.
func (c AmmConfig) TradeFeeBps() uint64 {
	return c.TradeFeeRate * 10_000 / FeeRateDenominator
}

// ProtocolFeeBps is the protocol share of the trade fee in basis points, rounded down.
func (c AmmConfig) ProtocolFeeBps() uint64 {
	return c.ProtocolFeeRate * 10_000 / FeeRateDenominator
}
