package dex

import (
	"rayScope/internal/model"
)

// LaunchpadPoolSize is the length of a launch pool account. The leading
// eight bytes are not validated.
const LaunchpadPoolSize = 429

const (
	lpEpoch                 = 8
	lpAuthBump              = 16
	lpStatus                = 17
	lpBaseDecimals          = 18
	lpQuoteDecimals         = 19
	lpMigrateType           = 20
	lpSupply                = 21
	lpTotalBaseSell         = 29
	lpVirtualBase           = 37
	lpVirtualQuote          = 45
	lpRealBase              = 53
	lpRealQuote             = 61
	lpTotalQuoteFundRaising = 69
	lpQuoteProtocolFee      = 77
	lpPlatformFee           = 85
	lpMigrateFee            = 93
	lpVestingTotalLocked    = 101
	lpVestingCliff          = 109
	lpVestingUnlock         = 117
	lpVestingStart          = 125
	lpVestingAllocated      = 133
	lpGlobalConfig          = 141
	lpPlatformConfig        = 173
	lpBaseMint              = 205
	lpQuoteMint             = 237
	lpBaseVault             = 269
	lpQuoteVault            = 301
	lpCreator               = 333
	lpTokenProgramFlag      = 365
	lpCreatorFeeOn          = 366
)

const (
	baseToken2022Flag  = 1 << 0
	quoteToken2022Flag = 1 << 1
)

// DecodeLaunchpad parses a launch pool account.
func DecodeLaunchpad(data []byte) (*model.LaunchpadPool, error) {
	if len(data) != LaunchpadPoolSize {
		return nil, lengthError(model.KindLaunchpad, LaunchpadPoolSize, len(data))
	}
	l := layout(data)

	status := l.u8(lpStatus)
	if status > uint8(model.LaunchpadTrade) {
		return nil, fieldError(model.KindLaunchpad, "status", "0, 1 or 2", status)
	}
	migrateType := l.u8(lpMigrateType)
	if migrateType > uint8(model.MigrateToCPSwap) {
		return nil, fieldError(model.KindLaunchpad, "migrate_type", "0 or 1", migrateType)
	}
	feeOn := l.u8(lpCreatorFeeOn)
	if feeOn > uint8(model.CreatorFeeBothToken) {
		return nil, fieldError(model.KindLaunchpad, "amm_creator_fee_on", "0 or 1", feeOn)
	}
	flags := l.u8(lpTokenProgramFlag)

	return &model.LaunchpadPool{
		Epoch:                 l.u64(lpEpoch),
		AuthBump:              l.u8(lpAuthBump),
		Status:                model.LaunchpadStatus(status),
		BaseDecimals:          l.u8(lpBaseDecimals),
		QuoteDecimals:         l.u8(lpQuoteDecimals),
		MigrateType:           model.MigrateType(migrateType),
		Supply:                l.u64(lpSupply),
		TotalBaseSell:         l.u64(lpTotalBaseSell),
		VirtualBase:           l.u64(lpVirtualBase),
		VirtualQuote:          l.u64(lpVirtualQuote),
		RealBase:              l.u64(lpRealBase),
		RealQuote:             l.u64(lpRealQuote),
		TotalQuoteFundRaising: l.u64(lpTotalQuoteFundRaising),
		QuoteProtocolFee:      l.u64(lpQuoteProtocolFee),
		PlatformFee:           l.u64(lpPlatformFee),
		MigrateFee:            l.u64(lpMigrateFee),
		Vesting: model.VestingSchedule{
			TotalLockedAmount:    l.u64(lpVestingTotalLocked),
			CliffPeriod:          l.u64(lpVestingCliff),
			UnlockPeriod:         l.u64(lpVestingUnlock),
			StartTime:            l.u64(lpVestingStart),
			AllocatedShareAmount: l.u64(lpVestingAllocated),
		},

		GlobalConfig:   l.pubkey(lpGlobalConfig),
		PlatformConfig: l.pubkey(lpPlatformConfig),
		BaseMint:       l.pubkey(lpBaseMint),
		QuoteMint:      l.pubkey(lpQuoteMint),
		BaseVault:      l.pubkey(lpBaseVault),
		QuoteVault:     l.pubkey(lpQuoteVault),
		Creator:        l.pubkey(lpCreator),

		BaseToken2022:  flags&baseToken2022Flag != 0,
		QuoteToken2022: flags&quoteToken2022Flag != 0,
		CreatorFeeOn:   model.CreatorFeeOn(feeOn),
	}, nil
}
