package model

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// LaunchpadStatus is the sale phase of a launch pool.
type LaunchpadStatus uint8

const (
	LaunchpadFund LaunchpadStatus = iota
	LaunchpadMigrate
	LaunchpadTrade
)

func (s LaunchpadStatus) String() string {
	switch s {
	case LaunchpadFund:
		return "fund"
	case LaunchpadMigrate:
		return "migrate"
	case LaunchpadTrade:
		return "trade"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

func (s LaunchpadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MigrateType is the AMM a launch pool graduates into.
type MigrateType uint8

const (
	MigrateToAMM MigrateType = iota
	MigrateToCPSwap
)

func (m MigrateType) MarshalText() ([]byte, error) {
	switch m {
	case MigrateToAMM:
		return []byte("amm"), nil
	case MigrateToCPSwap:
		return []byte("cpswap"), nil
	default:
		return []byte(fmt.Sprintf("unknown(%d)", uint8(m))), nil
	}
}

// CreatorFeeOn selects which tokens the post-migration creator fee is paid in.
type CreatorFeeOn uint8

const (
	CreatorFeeQuoteToken CreatorFeeOn = iota
	CreatorFeeBothToken
)

// VestingSchedule locks part of the base supply after migration.
type VestingSchedule struct {
	TotalLockedAmount    uint64 `json:"total_locked_amount"`
	CliffPeriod          uint64 `json:"cliff_period"`
	UnlockPeriod         uint64 `json:"unlock_period"`
	StartTime            uint64 `json:"start_time"`
	AllocatedShareAmount uint64 `json:"allocated_share_amount"`
}

// LaunchpadPool is a bonding-curve launch pool. Quote tokens raised during
// the sale accumulate in QuoteVault.
type LaunchpadPool struct {
	Epoch                 uint64          `json:"epoch"`
	AuthBump              uint8           `json:"auth_bump"`
	Status                LaunchpadStatus `json:"status"`
	BaseDecimals          uint8           `json:"base_decimals"`
	QuoteDecimals         uint8           `json:"quote_decimals"`
	MigrateType           MigrateType     `json:"migrate_type"`
	Supply                uint64          `json:"supply"`
	TotalBaseSell         uint64          `json:"total_base_sell"`
	VirtualBase           uint64          `json:"virtual_base"`
	VirtualQuote          uint64          `json:"virtual_quote"`
	RealBase              uint64          `json:"real_base"`
	RealQuote             uint64          `json:"real_quote"`
	TotalQuoteFundRaising uint64          `json:"total_quote_fund_raising"`
	QuoteProtocolFee      uint64          `json:"quote_protocol_fee"`
	PlatformFee           uint64          `json:"platform_fee"`
	MigrateFee            uint64          `json:"migrate_fee"`
	Vesting               VestingSchedule `json:"vesting_schedule"`

	GlobalConfig   solana.PublicKey `json:"global_config"`
	PlatformConfig solana.PublicKey `json:"platform_config"`
	BaseMint       solana.PublicKey `json:"base_mint"`
	QuoteMint      solana.PublicKey `json:"quote_mint"`
	BaseVault      solana.PublicKey `json:"base_vault"`
	QuoteVault     solana.PublicKey `json:"quote_vault"`
	Creator        solana.PublicKey `json:"creator"`

	// BaseToken2022 and QuoteToken2022 come from the token program flag bits.
	BaseToken2022  bool         `json:"base_token_2022"`
	QuoteToken2022 bool         `json:"quote_token_2022"`
	CreatorFeeOn   CreatorFeeOn `json:"creator_fee_on"`
}

func (*LaunchpadPool) Kind() Kind { return KindLaunchpad }

func (p *LaunchpadPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.BaseMint, p.QuoteMint
}

func (p *LaunchpadPool) Vaults() (solana.PublicKey, solana.PublicKey) {
	return p.BaseVault, p.QuoteVault
}

func (*LaunchpadPool) sealed() {}

// FundingVault is the account collecting quote tokens during the sale.
func (p *LaunchpadPool) FundingVault() solana.PublicKey {
	return p.QuoteVault
}

func (p *LaunchpadPool) IsFunding() bool {
	return p.Status == LaunchpadFund
}

func (p *LaunchpadPool) IsTradable() bool {
	return p.Status == LaunchpadTrade
}
