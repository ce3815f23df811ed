package main

import (
	"encoding/json"
	"io"
	"math/big"

	"github.com/shopspring/decimal"

	"rayScope/internal/model"
	"rayScope/internal/pool"
)

const outputPlaces = 18

func jsonEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

type poolView struct {
	Address string     `json:"address,omitempty"`
	Kind    model.Kind `json:"kind"`
	Pool    model.Pool `json:"pool"`
}

type priceView struct {
	Address   string          `json:"address"`
	Kind      model.Kind      `json:"kind"`
	Price     string          `json:"price"`
	Reserves  *model.Reserves `json:"reserves,omitempty"`
	CLMM      *clmmView       `json:"clmm,omitempty"`
	Launchpad *launchpadView  `json:"launchpad,omitempty"`
	Warning   string          `json:"warning,omitempty"`
}

type clmmView struct {
	Liquidity    string `json:"liquidity"`
	SqrtPriceX64 string `json:"sqrt_price_x64"`
	Tick         int32  `json:"tick"`
	ImpliedTick  int32  `json:"implied_tick"`
	TickPrice    string `json:"tick_price"`
	VirtualBase  string `json:"virtual_base"`
	VirtualQuote string `json:"virtual_quote"`
}

type launchpadView struct {
	Status          model.LaunchpadStatus `json:"status"`
	StartPrice      string                `json:"start_price"`
	EndPrice        string                `json:"end_price,omitempty"`
	FundingProgress string                `json:"funding_progress,omitempty"`
	RealPrice       string                `json:"real_price,omitempty"`
	TotalValue      string                `json:"total_value"`
	VestingUnlocked *uint64               `json:"vesting_unlocked,omitempty"`
}

func newPriceView(result pool.Result) priceView {
	m := result.Metrics
	view := priceView{
		Address:  result.Address.String(),
		Kind:     result.Pool.Kind(),
		Price:    m.PriceDecimal(outputPlaces).String(),
		Reserves: m.Reserves,
	}
	if m.CLMM != nil {
		view.CLMM = &clmmView{
			Liquidity:    m.CLMM.Liquidity.String(),
			SqrtPriceX64: m.CLMM.SqrtPriceX64.String(),
			Tick:         m.CLMM.Tick,
			ImpliedTick:  m.CLMM.ImpliedTick,
			TickPrice:    ratString(m.CLMM.TickPrice),
			VirtualBase:  ratString(m.CLMM.VirtualBase),
			VirtualQuote: ratString(m.CLMM.VirtualQuote),
		}
	}
	if m.Launchpad != nil {
		view.Launchpad = &launchpadView{
			Status:          m.Launchpad.Status,
			StartPrice:      ratString(m.Launchpad.StartPrice),
			EndPrice:        ratString(m.Launchpad.EndPrice),
			FundingProgress: ratString(m.Launchpad.FundingProgress),
			RealPrice:       ratString(m.Launchpad.RealPrice),
			TotalValue:      ratString(m.Launchpad.TotalValue),
			VestingUnlocked: m.Launchpad.VestingUnlocked,
		}
	}
	if m.Warning != nil {
		view.Warning = m.Warning.Error()
	}
	return view
}

func ratString(r *big.Rat) string {
	if r == nil {
		return ""
	}
	return decimal.NewFromBigRat(r, outputPlaces).String()
}
