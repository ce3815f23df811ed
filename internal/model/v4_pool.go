package model

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"
)

// V4Pool is a constant-product AMM v4 pool. It has no account discriminator.
type V4Pool struct {
	Status       uint64 `json:"status"`
	Nonce        uint64 `json:"nonce"`
	MaxOrder     uint64 `json:"max_order"`
	Depth        uint64 `json:"depth"`
	BaseDecimal  uint8  `json:"base_decimal"`
	QuoteDecimal uint8  `json:"quote_decimal"`
	State        uint64 `json:"state"`
	ResetFlag    uint64 `json:"reset_flag"`
	MinSize      uint64 `json:"min_size"`
	BaseLotSize  uint64 `json:"base_lot_size"`
	QuoteLotSize uint64 `json:"quote_lot_size"`

	VolMaxCutRatio         uint64 `json:"vol_max_cut_ratio"`
	AmountWaveRatio        uint64 `json:"amount_wave_ratio"`
	MinPriceMultiplier     uint64 `json:"min_price_multiplier"`
	MaxPriceMultiplier     uint64 `json:"max_price_multiplier"`
	SystemDecimalValue     uint64 `json:"system_decimal_value"`
	MinSeparateNumerator   uint64 `json:"min_separate_numerator"`
	MinSeparateDenominator uint64 `json:"min_separate_denominator"`

	TradeFeeNumerator   uint64 `json:"trade_fee_numerator"`
	TradeFeeDenominator uint64 `json:"trade_fee_denominator"`
	PnlNumerator        uint64 `json:"pnl_numerator"`
	PnlDenominator      uint64 `json:"pnl_denominator"`
	SwapFeeNumerator    uint64 `json:"swap_fee_numerator"`
	SwapFeeDenominator  uint64 `json:"swap_fee_denominator"`

	BaseNeedTakePnl  uint64 `json:"base_need_take_pnl"`
	QuoteNeedTakePnl uint64 `json:"quote_need_take_pnl"`
	QuoteTotalPnl    uint64 `json:"quote_total_pnl"`
	BaseTotalPnl     uint64 `json:"base_total_pnl"`
	PoolOpenTime     uint64 `json:"pool_open_time"`

	PunishPcAmount      uint64 `json:"punish_pc_amount"`
	PunishCoinAmount    uint64 `json:"punish_coin_amount"`
	OrderbookToInitTime uint64 `json:"orderbook_to_init_time"`

	SwapBaseInAmount   uint128.Uint128 `json:"-"`
	SwapQuoteOutAmount uint128.Uint128 `json:"-"`
	SwapBase2QuoteFee  uint64          `json:"swap_base2quote_fee"`
	SwapQuoteInAmount  uint128.Uint128 `json:"-"`
	SwapBaseOutAmount  uint128.Uint128 `json:"-"`
	SwapQuote2BaseFee  uint64          `json:"swap_quote2base_fee"`

	BaseVault       solana.PublicKey `json:"base_vault"`
	QuoteVault      solana.PublicKey `json:"quote_vault"`
	BaseMint        solana.PublicKey `json:"base_mint"`
	QuoteMint       solana.PublicKey `json:"quote_mint"`
	LpMint          solana.PublicKey `json:"lp_mint"`
	OpenOrders      solana.PublicKey `json:"open_orders"`
	MarketID        solana.PublicKey `json:"market_id"`
	MarketProgramID solana.PublicKey `json:"market_program_id"`
	TargetOrders    solana.PublicKey `json:"target_orders"`
	WithdrawQueue   solana.PublicKey `json:"withdraw_queue"`
	LpVault         solana.PublicKey `json:"lp_vault"`
	Owner           solana.PublicKey `json:"owner"`
	LpReserve       uint64           `json:"lp_reserve"`
}

func (*V4Pool) Kind() Kind { return KindV4 }

func (p *V4Pool) Mints() (solana.PublicKey, solana.PublicKey) { return p.BaseMint, p.QuoteMint }

func (p *V4Pool) Vaults() (solana.PublicKey, solana.PublicKey) { return p.BaseVault, p.QuoteVault }

func (*V4Pool) sealed() {}

func (p V4Pool) MarshalJSON() ([]byte, error) {
	type alias V4Pool
	return marshalWithWide(alias(p), map[string]uint128.Uint128{
		"swap_base_in_amount":   p.SwapBaseInAmount,
		"swap_quote_out_amount": p.SwapQuoteOutAmount,
		"swap_quote_in_amount":  p.SwapQuoteInAmount,
		"swap_base_out_amount":  p.SwapBaseOutAmount,
	})
}
