package hedgefolio

import "math"

// Analysis is the single-protocol solvency, leverage and yield summary
// over a set of lending positions.
//
// Every degenerate numeric case resolves to a sentinel instead of an
// error: HealthFactor is +Inf when there is no debt, Leverage is 1 when
// the net value is exactly zero, rates are 0 when their denominator is.
type Analysis struct {
	TotalSuppliedUSD float64                  `json:"totalSuppliedUSD"`
	TotalBorrowedUSD float64                  `json:"totalBorrowedUSD"`
	NetValueUSD      float64                  `json:"netValueUSD"`
	HealthFactor     float64                  `json:"healthFactor"`
	Leverage         float64                  `json:"leverage"`
	UtilizationRate  Percent                  `json:"utilizationRate"`
	NetAPY           Percent                  `json:"netAPY"`
	ByAsset          map[string]AssetExposure `json:"byAsset"`
	Loops            []LoopedPosition         `json:"loops"`
}

// AssetExposure sums every lending row of one asset. The grouping key is
// the raw symbol: this view is protocol-local and deliberately does not
// collapse wrapped variants.
type AssetExposure struct {
	Supplied    float64 `json:"supplied"`
	Borrowed    float64 `json:"borrowed"`
	SuppliedUSD float64 `json:"suppliedUSD"`
	BorrowedUSD float64 `json:"borrowedUSD"`
	Net         float64 `json:"net"`
	NetUSD      float64 `json:"netUSD"`
	Direction   Side    `json:"direction"`
}

// LoopedPosition flags an asset that is supplied and borrowed at the same
// time (recursive leverage). EffectiveLeverage = supplied/(supplied−
// borrowed); a fully looped asset (supplied == borrowed) reads as +Inf.
type LoopedPosition struct {
	Asset             string  `json:"asset"`
	Supplied          float64 `json:"supplied"`
	Borrowed          float64 `json:"borrowed"`
	EffectiveLeverage float64 `json:"effectiveLeverage"`
}

// AnalyzeExposure computes the solvency summary over the given lending
// positions. Duplicate rows for the same asset are summed, inputs are
// never mutated, and no error is ever returned.
func AnalyzeExposure(positions []LendingPosition) *Analysis {
	a := &Analysis{
		ByAsset: make(map[string]AssetExposure, len(positions)),
		Loops:   []LoopedPosition{},
	}

	var weightedThreshold float64 // Σ suppliedUSD×liquidationThreshold
	var supplyYield, borrowCost float64
	var order []string

	for _, p := range positions {
		a.TotalSuppliedUSD += p.SuppliedUSD
		a.TotalBorrowedUSD += p.BorrowedUSD
		weightedThreshold += p.SuppliedUSD * p.LiquidationThreshold
		supplyYield += p.SuppliedUSD * p.SupplyAPR
		borrowCost += p.BorrowedUSD * p.BorrowAPR

		aggr, seen := a.ByAsset[p.Asset]
		if !seen {
			order = append(order, p.Asset)
		}
		aggr.Supplied += p.Supplied
		aggr.Borrowed += p.Borrowed
		aggr.SuppliedUSD += p.SuppliedUSD
		aggr.BorrowedUSD += p.BorrowedUSD
		aggr.Net = aggr.Supplied - aggr.Borrowed
		aggr.NetUSD = aggr.SuppliedUSD - aggr.BorrowedUSD
		aggr.Direction = SideOf(aggr.Net)
		a.ByAsset[p.Asset] = aggr
	}

	a.NetValueUSD = a.TotalSuppliedUSD - a.TotalBorrowedUSD

	// No debt means no liquidation risk at all.
	if a.TotalBorrowedUSD == 0 {
		a.HealthFactor = math.Inf(1)
	} else {
		a.HealthFactor = weightedThreshold / a.TotalBorrowedUSD
	}

	// A fully offset book has no equity to lever; 1 by convention.
	if a.NetValueUSD == 0 {
		a.Leverage = 1
	} else {
		a.Leverage = a.TotalSuppliedUSD / a.NetValueUSD
	}

	if a.TotalSuppliedUSD != 0 {
		a.UtilizationRate = Percent(a.TotalBorrowedUSD / a.TotalSuppliedUSD * 100)
	}

	if a.NetValueUSD != 0 {
		a.NetAPY = Percent((supplyYield - borrowCost) / a.NetValueUSD)
	}

	// Loop detection over the grouped view, in first-seen asset order.
	for _, asset := range order {
		aggr := a.ByAsset[asset]
		if aggr.Supplied <= 0 || aggr.Borrowed <= 0 {
			continue
		}
		loop := LoopedPosition{Asset: asset, Supplied: aggr.Supplied, Borrowed: aggr.Borrowed}
		if aggr.Supplied == aggr.Borrowed {
			loop.EffectiveLeverage = math.Inf(1)
		} else {
			loop.EffectiveLeverage = aggr.Supplied / (aggr.Supplied - aggr.Borrowed)
		}
		a.Loops = append(a.Loops, loop)
	}

	return a
}
