package hedgefolio

import "testing"

func TestCalculateGreeks_Delta(t *testing.T) {
	positions := []LendingPosition{
		lend("WETH", 2, 0, 3000, 2.0, 0, 0.83),   // +6000
		lend("USDC", 100, 4100, 1, 4.0, 8.0, 0.78), // −4000
	}
	g := CalculateGreeks(positions, AnalyzeExposure(positions))

	if !almost(g.Delta.ByAsset["WETH"], 6000) {
		t.Errorf("delta WETH = %v, want 6000", g.Delta.ByAsset["WETH"])
	}
	if !almost(g.Delta.ByAsset["USDC"], -4000) {
		t.Errorf("delta USDC = %v, want -4000", g.Delta.ByAsset["USDC"])
	}
	if !almost(g.Delta.TotalUSD, 2000) {
		t.Errorf("delta total = %v, want 2000", g.Delta.TotalUSD)
	}
}

func TestCalculateGreeks_GammaPassthrough(t *testing.T) {
	positions := []LendingPosition{
		lend("WETH", 3, 0, 3000, 2.0, 0, 0.83),
		lend("USDC", 0, 3000, 1, 0, 8.0, 0.78),
	}
	a := AnalyzeExposure(positions)
	g := CalculateGreeks(positions, a)
	if g.Gamma.Leverage != a.Leverage {
		t.Errorf("Gamma.Leverage = %v, want the analysis leverage %v unchanged", g.Gamma.Leverage, a.Leverage)
	}
}

func TestCalculateGreeks_VegaRateShock(t *testing.T) {
	positions := []LendingPosition{
		lend("USDC", 0, 12000, 1, 0, 8.0, 0.78),
	}
	g := CalculateGreeks(positions, AnalyzeExposure(positions))

	// 1pp shock on $12000 of debt: $120/year, $10/month.
	if !almost(g.Vega.YearlyImpactUSD, 120) {
		t.Errorf("Vega yearly = %v, want 120", g.Vega.YearlyImpactUSD)
	}
	if !almost(g.Vega.MonthlyImpactUSD, 10) {
		t.Errorf("Vega monthly = %v, want 10", g.Vega.MonthlyImpactUSD)
	}
}

func TestCalculateGreeks_ThetaCarry(t *testing.T) {
	positions := []LendingPosition{
		lend("WETH", 10, 0, 3650, 2.0, 0, 0.83),  // earns 36500×2% = $730/y
		lend("USDC", 0, 3650, 1, 0, 10.0, 0.78),  // costs 3650×10% = $365/y
	}
	g := CalculateGreeks(positions, AnalyzeExposure(positions))

	if !almost(g.Theta.DailyUSD, 1) { // (730−365)/365
		t.Errorf("Theta daily = %v, want 1", g.Theta.DailyUSD)
	}
	if !almost(g.Theta.MonthlyUSD, 30) {
		t.Errorf("Theta monthly = %v, want 30", g.Theta.MonthlyUSD)
	}
	if !almost(g.Theta.YearlyUSD, 365) {
		t.Errorf("Theta yearly = %v, want 365", g.Theta.YearlyUSD)
	}
}
