package dex

import (
	"errors"
	"reflect"
	"testing"

	"lukechampine.com/uint128"

	"rayScope/internal/model"
)

func TestPoolStateDiscriminator(t *testing.T) {
	want := [8]byte{247, 237, 227, 245, 215, 195, 222, 70}
	if got := PoolStateDiscriminator(); got != want {
		t.Fatalf("unexpected PoolState discriminator: %v", got)
	}
	if AmmConfigDiscriminator() == want {
		t.Fatalf("AmmConfig discriminator must differ from PoolState")
	}
}

func TestDecodeV4(t *testing.T) {
	pool, err := DecodeV4(v4Fixture())
	if err != nil {
		t.Fatalf("decode v4: %v", err)
	}
	if pool.Status != 6 || pool.BaseDecimal != 9 || pool.QuoteDecimal != 6 {
		t.Fatalf("unexpected header fields: %+v", pool)
	}
	if pool.TradeFeeNumerator != 25 || pool.TradeFeeDenominator != 10000 {
		t.Fatalf("unexpected trade fee: %d/%d", pool.TradeFeeNumerator, pool.TradeFeeDenominator)
	}
	if pool.BaseVault != testKey(1) || pool.QuoteVault != testKey(2) {
		t.Fatalf("unexpected vaults: %s %s", pool.BaseVault, pool.QuoteVault)
	}
	if pool.BaseMint != testKey(3) || pool.QuoteMint != testKey(4) || pool.LpMint != testKey(5) {
		t.Fatalf("unexpected mints")
	}
	if pool.MarketID != testKey(6) {
		t.Fatalf("unexpected market id: %s", pool.MarketID)
	}
	if pool.SwapBaseInAmount != uint128.New(5, 1) {
		t.Fatalf("unexpected swap base in: %s", pool.SwapBaseInAmount)
	}
	if pool.LpReserve != 123456 || pool.PoolOpenTime != 1700000000 {
		t.Fatalf("unexpected tail fields: %d %d", pool.LpReserve, pool.PoolOpenTime)
	}
}

func TestDecodeV4ConfigFieldOffsets(t *testing.T) {
	data := v4Fixture()
	for i, off := range []int{72, 80, 104, 112, 120, 128, 136, 160, 168, 232, 240, 248} {
		data.putU64(off, uint64(1000+i))
	}

	pool, err := DecodeV4(data)
	if err != nil {
		t.Fatalf("decode v4: %v", err)
	}
	got := []uint64{
		pool.VolMaxCutRatio, pool.AmountWaveRatio,
		pool.MinPriceMultiplier, pool.MaxPriceMultiplier, pool.SystemDecimalValue,
		pool.MinSeparateNumerator, pool.MinSeparateDenominator,
		pool.PnlNumerator, pool.PnlDenominator,
		pool.PunishPcAmount, pool.PunishCoinAmount, pool.OrderbookToInitTime,
	}
	for i, v := range got {
		if v != uint64(1000+i) {
			t.Fatalf("field %d: got %d, want %d", i, v, 1000+i)
		}
	}
	if pool.TradeFeeNumerator != 25 || pool.SwapFeeDenominator != 10000 || pool.PoolOpenTime != 1700000000 {
		t.Fatalf("neighbouring fields clobbered: %+v", pool)
	}
}

func TestDecodeV4InvalidFields(t *testing.T) {
	cases := map[string]fixture{
		"trade_fee_denominator": v4Fixture().putU64(v4TradeFeeDenominator, 0),
		"swap_fee_numerator":    v4Fixture().putU64(v4SwapFeeNumerator, 10001),
		"base_decimal":          v4Fixture().putU64(v4BaseDecimal, 256),
	}
	for field, data := range cases {
		_, err := DecodeV4(data)
		if !errors.Is(err, ErrInvalidField) {
			t.Fatalf("%s: expected ErrInvalidField, got %v", field, err)
		}
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) || decodeErr.Field != field {
			t.Fatalf("%s: expected field in error, got %v", field, err)
		}
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	decoders := map[model.Kind]int{
		model.KindV4:        V4PoolSize,
		model.KindCPMM:      CPMMPoolSize,
		model.KindCLMM:      CLMMPoolSize,
		model.KindLaunchpad: LaunchpadPoolSize,
	}
	for kind, size := range decoders {
		for _, n := range []int{0, size - 1, size + 1} {
			pool, err := Decode(make([]byte, n), kind)
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("%s with %d bytes: expected ErrLengthMismatch, got %v", kind, n, err)
			}
			if pool != nil {
				t.Fatalf("%s with %d bytes: expected nil pool", kind, n)
			}
		}
	}
}

func TestDecodeDiscriminatorMismatch(t *testing.T) {
	cpmm := cpmmFixture()
	cpmm[0] ^= 0xff
	if _, err := DecodeCPMM(cpmm); !errors.Is(err, ErrDiscriminatorMismatch) {
		t.Fatalf("cpmm: expected ErrDiscriminatorMismatch, got %v", err)
	}

	clmm := clmmFixture().withDiscriminator(ammConfigDiscriminator)
	if _, err := DecodeCLMM(clmm); !errors.Is(err, ErrDiscriminatorMismatch) {
		t.Fatalf("clmm: expected ErrDiscriminatorMismatch, got %v", err)
	}

	cfg := ammConfigFixture().withDiscriminator(poolStateDiscriminator)
	if _, err := DecodeAmmConfig(cfg); !errors.Is(err, ErrDiscriminatorMismatch) {
		t.Fatalf("amm config: expected ErrDiscriminatorMismatch, got %v", err)
	}
}

func TestDecodeCPMM(t *testing.T) {
	pool, err := DecodeCPMM(cpmmFixture())
	if err != nil {
		t.Fatalf("decode cpmm: %v", err)
	}
	if pool.AmmConfig != testKey(10) {
		t.Fatalf("unexpected amm config: %s", pool.AmmConfig)
	}
	base, quote := pool.Vaults()
	if base != testKey(11) || quote != testKey(12) {
		t.Fatalf("unexpected vaults: %s %s", base, quote)
	}
	baseMint, quoteMint := pool.Mints()
	if baseMint != testKey(13) || quoteMint != testKey(14) {
		t.Fatalf("unexpected mints: %s %s", baseMint, quoteMint)
	}
	if pool.Mint0Decimals != 9 || pool.Mint1Decimals != 6 || pool.LpMintDecimals != 9 {
		t.Fatalf("unexpected decimals: %d %d %d", pool.Mint0Decimals, pool.Mint1Decimals, pool.LpMintDecimals)
	}
	if pool.LpSupply != 42 || pool.OpenTime != 1710000000 {
		t.Fatalf("unexpected supply/open time: %d %d", pool.LpSupply, pool.OpenTime)
	}
	if !pool.EnableCreatorFee || pool.CreatorFeesToken1 != 77 {
		t.Fatalf("unexpected creator fee fields: %v %d", pool.EnableCreatorFee, pool.CreatorFeesToken1)
	}
	if pool.FeeConfig != nil {
		t.Fatalf("fee config must not be populated by the decoder")
	}
}

func TestDecodeAmmConfig(t *testing.T) {
	cfg, err := DecodeAmmConfig(ammConfigFixture())
	if err != nil {
		t.Fatalf("decode amm config: %v", err)
	}
	if cfg.Index != 3 || cfg.TradeFeeRate != 2500 || cfg.ProtocolFeeRate != 120000 || cfg.FundFeeRate != 40000 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TradeFeeBps() != 25 {
		t.Fatalf("expected 25 bps, got %d", cfg.TradeFeeBps())
	}
	if cfg.ProtocolOwner != testKey(15) {
		t.Fatalf("unexpected protocol owner: %s", cfg.ProtocolOwner)
	}

	bad := ammConfigFixture().putU64(cfgTradeFeeRate, 1_000_001)
	if _, err := DecodeAmmConfig(bad); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestDecodeCLMM(t *testing.T) {
	pool, err := DecodeCLMM(clmmFixture())
	if err != nil {
		t.Fatalf("decode clmm: %v", err)
	}
	if pool.TickSpacing != 60 || pool.TickCurrent != 0 {
		t.Fatalf("unexpected tick fields: %d %d", pool.TickSpacing, pool.TickCurrent)
	}
	if pool.SqrtPriceX64 != uint128.New(0, 1) {
		t.Fatalf("unexpected sqrt price: %s", pool.SqrtPriceX64)
	}
	if pool.Liquidity != uint128.From64(1_000_000_000) {
		t.Fatalf("unexpected liquidity: %s", pool.Liquidity)
	}
	if pool.MintDecimals0 != 9 || pool.MintDecimals1 != 6 {
		t.Fatalf("unexpected decimals: %d %d", pool.MintDecimals0, pool.MintDecimals1)
	}
	if pool.TokenVault0 != testKey(23) || pool.TokenVault1 != testKey(24) {
		t.Fatalf("unexpected vaults")
	}
	if pool.RewardInfos[0].Initialized() || !pool.RewardInfos[1].Initialized() {
		t.Fatalf("unexpected reward states: %+v", pool.RewardInfos)
	}
	if pool.RewardInfos[1].TokenMint != testKey(25) {
		t.Fatalf("unexpected reward mint: %s", pool.RewardInfos[1].TokenMint)
	}
	if pool.TickArrayBitmap[15] != 1<<63 {
		t.Fatalf("unexpected bitmap tail: %x", pool.TickArrayBitmap[15])
	}
	if pool.OpenTime != 1720000000 {
		t.Fatalf("unexpected open time: %d", pool.OpenTime)
	}
}

func TestDecodeCLMMInvalidFields(t *testing.T) {
	cases := map[string]fixture{
		"tick_spacing":   clmmFixture().putU16(clmmTickSpacing, 0),
		"tick_current":   clmmFixture().putI32(clmmTickCurrent, MaxTick+1),
		"sqrt_price_x64": clmmFixture().putU128(clmmSqrtPriceX64, uint128.From64(4295048015)),
	}
	for field, data := range cases {
		_, err := DecodeCLMM(data)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) || !errors.Is(err, ErrInvalidField) || decodeErr.Field != field {
			t.Fatalf("%s: expected invalid field error, got %v", field, err)
		}
	}

	atBounds := clmmFixture().
		putI32(clmmTickCurrent, MinTick).
		putU128(clmmSqrtPriceX64, MinSqrtPriceX64)
	if _, err := DecodeCLMM(atBounds); err != nil {
		t.Fatalf("bounds are inclusive: %v", err)
	}
}

func TestDecodeLaunchpad(t *testing.T) {
	pool, err := DecodeLaunchpad(launchpadFixture())
	if err != nil {
		t.Fatalf("decode launchpad: %v", err)
	}
	if !pool.IsFunding() || pool.IsTradable() {
		t.Fatalf("expected funding status, got %s", pool.Status)
	}
	if pool.MigrateType != model.MigrateToCPSwap {
		t.Fatalf("unexpected migrate type: %d", pool.MigrateType)
	}
	if pool.VirtualBase != 1_073_025_605_596_382 || pool.VirtualQuote != 30_000_852_951 {
		t.Fatalf("unexpected virtual reserves: %d %d", pool.VirtualBase, pool.VirtualQuote)
	}
	if pool.TotalQuoteFundRaising != 85_000_000_000 || pool.Vesting.TotalLockedAmount != 1000 {
		t.Fatalf("unexpected funding fields")
	}
	if pool.FundingVault() != testKey(33) {
		t.Fatalf("funding vault should be the quote vault")
	}
	if !pool.BaseToken2022 || pool.QuoteToken2022 {
		t.Fatalf("unexpected token program flags: %v %v", pool.BaseToken2022, pool.QuoteToken2022)
	}
}

func TestDecodeLaunchpadInvalidFields(t *testing.T) {
	cases := map[string]fixture{
		"status":             launchpadFixture().putU8(lpStatus, 3),
		"migrate_type":       launchpadFixture().putU8(lpMigrateType, 2),
		"amm_creator_fee_on": launchpadFixture().putU8(lpCreatorFeeOn, 2),
	}
	for field, data := range cases {
		_, err := DecodeLaunchpad(data)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) || decodeErr.Field != field {
			t.Fatalf("%s: expected invalid field error, got %v", field, err)
		}
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	data := clmmFixture()
	first, err := Decode(data, model.KindCLMM)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	second, err := Decode(data, model.KindCLMM)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("decoding the same buffer twice must be equal")
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		data fixture
		want model.Kind
	}{
		{"v4", v4Fixture(), model.KindV4},
		{"cpmm", cpmmFixture(), model.KindCPMM},
		{"clmm", clmmFixture(), model.KindCLMM},
		{"launchpad", launchpadFixture(), model.KindLaunchpad},
	}
	for _, tc := range cases {
		pool, err := Decode(tc.data, model.KindAuto)
		if err != nil {
			t.Fatalf("%s: detect: %v", tc.name, err)
		}
		if pool.Kind() != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, pool.Kind())
		}
	}
}

func TestDetectUnknownFormat(t *testing.T) {
	for _, n := range []int{0, 100, 1000} {
		if _, err := Detect(make([]byte, n)); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("%d bytes: expected ErrUnknownFormat, got %v", n, err)
		}
	}

	// right size for CPMM but wrong prefix
	if _, err := Detect(make([]byte, CPMMPoolSize)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat for unprefixed cpmm-sized buffer, got %v", err)
	}
}

func TestDetectSurfacesInvalidField(t *testing.T) {
	_, err := Detect(v4Fixture().putU64(v4SwapFeeDenominator, 0))
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v4, err := DecodeV4(EncodeV4(sampleV4()))
	if err != nil || !reflect.DeepEqual(v4, sampleV4()) {
		t.Fatalf("v4 round trip mismatch: %v", err)
	}
	cpmm, err := DecodeCPMM(EncodeCPMM(sampleCPMM()))
	if err != nil || !reflect.DeepEqual(cpmm, sampleCPMM()) {
		t.Fatalf("cpmm round trip mismatch: %v", err)
	}
	cfg, err := DecodeAmmConfig(EncodeAmmConfig(sampleAmmConfig()))
	if err != nil || !reflect.DeepEqual(cfg, sampleAmmConfig()) {
		t.Fatalf("amm config round trip mismatch: %v", err)
	}
	clmm, err := DecodeCLMM(EncodeCLMM(sampleCLMM()))
	if err != nil || !reflect.DeepEqual(clmm, sampleCLMM()) {
		t.Fatalf("clmm round trip mismatch: %v", err)
	}
	launchpad, err := DecodeLaunchpad(EncodeLaunchpad(sampleLaunchpad()))
	if err != nil || !reflect.DeepEqual(launchpad, sampleLaunchpad()) {
		t.Fatalf("launchpad round trip mismatch: %v", err)
	}
}
