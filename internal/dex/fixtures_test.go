package dex

import (
	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"rayScope/internal/model"
)

// fixture is an encoded account that tests can corrupt field by field.
type fixture []byte

func (f fixture) withDiscriminator(d [discriminatorSize]byte) fixture {
	copy(f, d[:])
	return f
}

func (f fixture) putU8(off int, v uint8) fixture {
	layout(f).putU8(off, v)
	return f
}

func (f fixture) putU16(off int, v uint16) fixture {
	layout(f).putU16(off, v)
	return f
}

func (f fixture) putI32(off int, v int32) fixture {
	layout(f).putI32(off, v)
	return f
}

func (f fixture) putU64(off int, v uint64) fixture {
	layout(f).putU64(off, v)
	return f
}

func (f fixture) putU128(off int, v uint128.Uint128) fixture {
	layout(f).putU128(off, v)
	return f
}

// testKey returns a deterministic address whose bytes are all seed.
func testKey(seed byte) solana.PublicKey {
	var k solana.PublicKey
	for i := range k {
		k[i] = seed
	}
	return k
}

func sampleV4() *model.V4Pool {
	return &model.V4Pool{
		Status:                 6,
		Nonce:                  254,
		BaseDecimal:            9,
		QuoteDecimal:           6,
		TradeFeeNumerator:      25,
		TradeFeeDenominator:    10000,
		SwapFeeNumerator:       25,
		SwapFeeDenominator:     10000,
		PoolOpenTime:           1700000000,
		VolMaxCutRatio:         500,
		AmountWaveRatio:        5000000,
		MinPriceMultiplier:     1,
		MaxPriceMultiplier:     1000000000,
		SystemDecimalValue:     1000000000,
		MinSeparateNumerator:   5,
		MinSeparateDenominator: 10000,
		PnlNumerator:           12,
		PnlDenominator:         100,
		PunishPcAmount:         31,
		PunishCoinAmount:       32,
		OrderbookToInitTime:    1699999000,
		SwapBaseInAmount:       uint128.New(5, 1),
		SwapQuoteOutAmount:     uint128.From64(99),
		BaseVault:              testKey(1),
		QuoteVault:             testKey(2),
		BaseMint:               testKey(3),
		QuoteMint:              testKey(4),
		LpMint:                 testKey(5),
		MarketID:               testKey(6),
		Owner:                  testKey(7),
		LpReserve:              123456,
	}
}

func sampleCPMM() *model.CPMMPool {
	return &model.CPMMPool{
		AmmConfig:         testKey(10),
		Token0Vault:       testKey(11),
		Token1Vault:       testKey(12),
		Token0Mint:        testKey(13),
		Token1Mint:        testKey(14),
		LpMintDecimals:    9,
		Mint0Decimals:     9,
		Mint1Decimals:     6,
		LpSupply:          42,
		OpenTime:          1710000000,
		EnableCreatorFee:  true,
		CreatorFeesToken1: 77,
	}
}

func sampleAmmConfig() *model.AmmConfig {
	return &model.AmmConfig{
		Index:           3,
		TradeFeeRate:    2500,
		ProtocolFeeRate: 120000,
		FundFeeRate:     40000,
		CreatePoolFee:   150000000,
		ProtocolOwner:   testKey(15),
	}
}

func sampleCLMM() *model.CLMMPool {
	pool := &model.CLMMPool{
		AmmConfig:     testKey(20),
		TokenMint0:    testKey(21),
		TokenMint1:    testKey(22),
		TokenVault0:   testKey(23),
		TokenVault1:   testKey(24),
		MintDecimals0: 9,
		MintDecimals1: 6,
		TickSpacing:   60,
		Liquidity:     uint128.From64(1_000_000_000),
		SqrtPriceX64:  uint128.New(0, 1),
		OpenTime:      1720000000,
	}
	pool.RewardInfos[1] = model.RewardInfo{
		RewardState:           2,
		EndTime:               1730000000,
		EmissionsPerSecondX64: uint128.New(7, 3),
		TokenMint:             testKey(25),
	}
	pool.TickArrayBitmap[15] = 1 << 63
	return pool
}

func sampleLaunchpad() *model.LaunchpadPool {
	return &model.LaunchpadPool{
		Epoch:                 600,
		Status:                model.LaunchpadFund,
		BaseDecimals:          6,
		QuoteDecimals:         9,
		MigrateType:           model.MigrateToCPSwap,
		Supply:                1_000_000_000_000_000,
		TotalBaseSell:         793_100_000_000_000,
		VirtualBase:           1_073_025_605_596_382,
		VirtualQuote:          30_000_852_951,
		TotalQuoteFundRaising: 85_000_000_000,
		Vesting:               model.VestingSchedule{TotalLockedAmount: 1000},
		BaseMint:              testKey(30),
		QuoteMint:             testKey(31),
		BaseVault:             testKey(32),
		QuoteVault:            testKey(33),
		BaseToken2022:         true,
	}
}

func v4Fixture() fixture        { return fixture(EncodeV4(sampleV4())) }
func cpmmFixture() fixture      { return fixture(EncodeCPMM(sampleCPMM())) }
func ammConfigFixture() fixture { return fixture(EncodeAmmConfig(sampleAmmConfig())) }
func clmmFixture() fixture      { return fixture(EncodeCLMM(sampleCLMM())) }
func launchpadFixture() fixture { return fixture(EncodeLaunchpad(sampleLaunchpad())) }
