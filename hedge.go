package hedgefolio

import "math"

// HedgeAnalysis combines lending exposure with derivative exposure into
// per-asset hedge ratios, portfolio totals and a blended yield.
//
// Ratios are deliberately uncapped: a hedge ratio above 100 means the
// short leg is bigger than the exposure it offsets, and callers need to
// see that. Portfolio NetExposureUSD is a signed sum so the directional
// bias of the whole book survives aggregation; the per-leg totals are
// absolute sums.
type HedgeAnalysis struct {
	Assets []CombinedExposure `json:"assets"`

	AaveTotalUSD        float64 `json:"aaveTotalUSD"`
	HyperliquidTotalUSD float64 `json:"hyperliquidTotalUSD"`
	NetExposureUSD      float64 `json:"netExposureUSD"`
	AaveEquityUSD       float64 `json:"aaveEquityUSD"`
	HedgeMarginUSD      float64 `json:"hedgeMarginUSD"`
	TotalCapitalUSD     float64 `json:"totalCapitalUSD"`
	OverallHedgeRatio   Percent `json:"overallHedgeRatio"`

	PerfectlyHedged []string `json:"perfectlyHedged"`
	OverHedged      []string `json:"overHedged"`
	PartiallyHedged []string `json:"partiallyHedged"`
	Unhedged        []string `json:"unhedged"`

	AaveNetAPY            Percent `json:"aaveNetAPY"`
	HyperliquidFundingAPY Percent `json:"hyperliquidFundingAPY"`
	CombinedNetAPY        Percent `json:"combinedNetAPY"`
}

// CombinedExposure is the two legs of one normalized asset side by side.
type CombinedExposure struct {
	Symbol  string          `json:"symbol"`
	Lending LendingExposure `json:"lending"`
	Hedge   HedgeExposure   `json:"hedge"`

	// Net of both legs. NetUSD marks the net units at the price table's
	// spot price; a missing price reads as 0.
	NetAmount    float64 `json:"netAmount"`
	NetUSD       float64 `json:"netUSD"`
	NetDirection Side    `json:"netDirection"`

	// HedgeRatio is only meaningful when the two legs oppose; any other
	// sign combination (no hedge, or an amplifying same-direction leg)
	// yields 0. Uncapped: >100 signals over-hedging.
	HedgeRatio Percent `json:"hedgeRatio"`
}

// LendingExposure is the money-market leg: net units and net USD summed
// across every lending row whose normalized symbol matches.
type LendingExposure struct {
	Net       float64 `json:"net"`
	NetUSD    float64 `json:"netUSD"`
	Direction Side    `json:"direction"`
}

// HedgeExposure is the derivative leg: the single matching perp position,
// or the zero record when the asset has none.
type HedgeExposure struct {
	Size                  float64 `json:"size"`
	SizeUSD               float64 `json:"sizeUSD"`
	Side                  Side    `json:"side"`
	Leverage              float64 `json:"leverage"`
	UnrealizedPnl         float64 `json:"unrealizedPnl"`
	FundingRate           float64 `json:"fundingRate"`
	FundingRateAnnualized float64 `json:"fundingRateAnnualized"`
}

// opposes reports whether the hedge leg runs against the lending leg.
func opposes(lending, hedge Side) bool {
	return (lending == Long && hedge == Short) || (lending == Short && hedge == Long)
}

// AnalyzeHedge matches lending positions against derivative positions by
// normalized symbol and derives hedge effectiveness and blended yield.
// Asset order is the lending list's first-seen order, hedge-only coins
// appended after. A nil symbols table falls back to DefaultSymbols. No
// error is ever returned: missing prices read as 0 and one-sided assets
// get a zero record on the absent side.
func AnalyzeHedge(lending []LendingPosition, hedges []HedgePosition, prices PriceTable, symbols SymbolTable) *HedgeAnalysis {
	if symbols == nil {
		symbols = DefaultSymbols()
	}

	// Union of normalized symbols, lending first.
	var order []string
	seen := make(map[string]bool)
	lendingBySymbol := make(map[string]*LendingExposure)
	for _, p := range lending {
		sym := symbols.Normalize(p.Asset)
		if !seen[sym] {
			seen[sym] = true
			order = append(order, sym)
			lendingBySymbol[sym] = &LendingExposure{}
		}
		leg := lendingBySymbol[sym]
		leg.Net += p.Supplied - p.Borrowed
		leg.NetUSD += p.SuppliedUSD - p.BorrowedUSD
	}
	hedgeBySymbol := make(map[string]HedgePosition)
	for _, h := range hedges {
		if !h.IsOpen() {
			continue
		}
		sym := symbols.Normalize(h.Coin)
		if !seen[sym] {
			seen[sym] = true
			order = append(order, sym)
		}
		if _, dup := hedgeBySymbol[sym]; !dup {
			hedgeBySymbol[sym] = h
		}
	}

	ha := &HedgeAnalysis{
		Assets:          make([]CombinedExposure, 0, len(order)),
		PerfectlyHedged: []string{},
		OverHedged:      []string{},
		PartiallyHedged: []string{},
		Unhedged:        []string{},
	}

	for _, sym := range order {
		ce := CombinedExposure{Symbol: sym}

		if leg, ok := lendingBySymbol[sym]; ok {
			ce.Lending = *leg
		}
		ce.Lending.Direction = SideOf(ce.Lending.Net)

		var signedHedge, signedHedgeUSD float64
		if h, ok := hedgeBySymbol[sym]; ok {
			ce.Hedge = HedgeExposure{
				Size:                  h.Size,
				SizeUSD:               h.NotionalValue,
				Side:                  h.Side,
				Leverage:              h.Leverage,
				UnrealizedPnl:         h.UnrealizedPnl,
				FundingRate:           h.FundingRate,
				FundingRateAnnualized: h.FundingRateAnnualized,
			}
			signedHedge = h.SignedSize()
			signedHedgeUSD = h.SignedNotional()
		} else {
			ce.Hedge.Side = Neutral
		}

		ce.NetAmount = ce.Lending.Net + signedHedge
		ce.NetUSD = ce.NetAmount * prices[sym]
		ce.NetDirection = SideOf(ce.NetAmount)

		if opposes(ce.Lending.Direction, ce.Hedge.Side) && ce.Lending.NetUSD != 0 {
			ce.HedgeRatio = Percent(math.Abs(signedHedgeUSD) / math.Abs(ce.Lending.NetUSD) * 100)
		}

		ha.AaveTotalUSD += math.Abs(ce.Lending.NetUSD)
		ha.HyperliquidTotalUSD += math.Abs(ce.Hedge.SizeUSD)
		ha.NetExposureUSD += ce.NetUSD

		ha.Assets = append(ha.Assets, ce)
	}

	// Equity over all lending rows, ungrouped.
	var supplyYield, borrowCost float64
	var totalSupplied, totalBorrowed float64
	for _, p := range lending {
		totalSupplied += p.SuppliedUSD
		totalBorrowed += p.BorrowedUSD
		supplyYield += p.SuppliedUSD * p.SupplyAPR
		borrowCost += p.BorrowedUSD * p.BorrowAPR
	}
	ha.AaveEquityUSD = totalSupplied - totalBorrowed

	// Implied margin posted on the perp account.
	var fundingCarry, totalNotional float64
	for _, h := range hedges {
		if !h.IsOpen() {
			continue
		}
		if h.Leverage > 0 {
			ha.HedgeMarginUSD += h.NotionalValue / h.Leverage
		}
		// Shorts receive funding under the usual longs-pay convention.
		sign := -1.0
		if h.Side == Short {
			sign = 1.0
		}
		fundingCarry += sign * h.FundingRateAnnualized * h.NotionalValue
		totalNotional += h.NotionalValue
	}
	ha.TotalCapitalUSD = ha.AaveEquityUSD + ha.HedgeMarginUSD

	if ha.AaveTotalUSD != 0 {
		ha.OverallHedgeRatio = Percent(ha.HyperliquidTotalUSD / ha.AaveTotalUSD * 100)
	}

	// Effectiveness buckets. Assets with no lending exposure carry
	// nothing to hedge and stay out of every bucket.
	for _, ce := range ha.Assets {
		if ce.Lending.NetUSD == 0 {
			continue
		}
		switch hr := float64(ce.HedgeRatio); {
		case hr > 105:
			ha.OverHedged = append(ha.OverHedged, ce.Symbol)
		case hr >= 95:
			ha.PerfectlyHedged = append(ha.PerfectlyHedged, ce.Symbol)
		case hr > 20:
			ha.PartiallyHedged = append(ha.PartiallyHedged, ce.Symbol)
		default:
			ha.Unhedged = append(ha.Unhedged, ce.Symbol)
		}
	}

	// Yield blending. Lending APY is USD-weighted over the equity; a
	// non-positive equity makes the weighted figure meaningless.
	if ha.AaveEquityUSD > 0 {
		ha.AaveNetAPY = Percent((supplyYield - borrowCost) / ha.AaveEquityUSD)
	}
	if totalNotional > 0 {
		ha.HyperliquidFundingAPY = Percent(fundingCarry / totalNotional)
	}
	if ha.TotalCapitalUSD > 0 {
		ha.CombinedNetAPY = Percent((ha.AaveEquityUSD*float64(ha.AaveNetAPY) + fundingCarry) / ha.TotalCapitalUSD)
	}

	return ha
}
