package hedgefolio

// Greeks is a deliberately loose risk-sensitivity lens over a lending
// book. It borrows the options vocabulary without the calculus: delta is
// directional USD exposure, gamma re-expresses the account's leverage,
// vega measures a flat 1-point borrow-rate shock and theta the net carry.
type Greeks struct {
	Delta Delta `json:"delta"`
	Gamma Gamma `json:"gamma"`
	Vega  Vega  `json:"vega"`
	Theta Theta `json:"theta"`
}

// Delta is the directional USD exposure, per raw asset symbol and total.
type Delta struct {
	ByAsset  map[string]float64 `json:"byAsset"`
	TotalUSD float64            `json:"totalUSD"`
}

// Gamma carries the portfolio leverage straight from the exposure
// analysis: how much convexity the account took on, not a second
// derivative.
type Gamma struct {
	Leverage float64 `json:"leverage"`
}

// Vega is the cost impact of variable borrow rates rising by one
// percentage point.
type Vega struct {
	YearlyImpactUSD  float64 `json:"yearlyImpactUSD"`
	MonthlyImpactUSD float64 `json:"monthlyImpactUSD"`
}

// Theta is the net carry of the book, projected linearly.
type Theta struct {
	DailyUSD   float64 `json:"dailyUSD"`
	MonthlyUSD float64 `json:"monthlyUSD"`
	YearlyUSD  float64 `json:"yearlyUSD"`
}

// CalculateGreeks derives the sensitivity report from the lending
// positions and the already-computed exposure analysis (only its leverage
// figure is consumed, untransformed).
func CalculateGreeks(positions []LendingPosition, analysis *Analysis) *Greeks {
	g := &Greeks{
		Delta: Delta{ByAsset: make(map[string]float64, len(positions))},
		Gamma: Gamma{Leverage: analysis.Leverage},
	}

	var totalBorrowedUSD float64
	var supplyYield, borrowCost float64
	for _, p := range positions {
		net := (p.Supplied - p.Borrowed) * p.Price
		g.Delta.ByAsset[p.Asset] += net
		g.Delta.TotalUSD += net

		totalBorrowedUSD += p.BorrowedUSD
		supplyYield += p.SuppliedUSD * p.SupplyAPR
		borrowCost += p.BorrowedUSD * p.BorrowAPR
	}

	g.Vega.YearlyImpactUSD = totalBorrowedUSD * 0.01
	g.Vega.MonthlyImpactUSD = g.Vega.YearlyImpactUSD / 12

	g.Theta.DailyUSD = (supplyYield - borrowCost) / 365 / 100
	g.Theta.MonthlyUSD = g.Theta.DailyUSD * 30
	g.Theta.YearlyUSD = g.Theta.DailyUSD * 365

	return g
}
