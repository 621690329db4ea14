package hedgefolio

import (
	"math"
	"testing"
)

// lend is a shorthand to build a priced lending position for tests.
func lend(asset string, supplied, borrowed, price, supplyAPR, borrowAPR, threshold float64) LendingPosition {
	return LendingPosition{
		Asset:                asset,
		Supplied:             supplied,
		Borrowed:             borrowed,
		SuppliedUSD:          supplied * price,
		BorrowedUSD:          borrowed * price,
		SupplyAPR:            supplyAPR,
		BorrowAPR:            borrowAPR,
		LiquidationThreshold: threshold,
		Price:                price,
	}
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeExposure_Totals(t *testing.T) {
	positions := []LendingPosition{
		lend("WETH", 10, 0, 3000, 2.0, 0, 0.83),
		lend("USDC", 0, 15000, 1, 0, 8.0, 0.78),
	}

	a := AnalyzeExposure(positions)

	if !almost(a.TotalSuppliedUSD, 30000) {
		t.Errorf("TotalSuppliedUSD = %v, want 30000", a.TotalSuppliedUSD)
	}
	if !almost(a.TotalBorrowedUSD, 15000) {
		t.Errorf("TotalBorrowedUSD = %v, want 15000", a.TotalBorrowedUSD)
	}
	if !almost(a.NetValueUSD, 15000) {
		t.Errorf("NetValueUSD = %v, want 15000", a.NetValueUSD)
	}
	// HF = 30000×0.83 / 15000 = 1.66
	if !almost(a.HealthFactor, 1.66) {
		t.Errorf("HealthFactor = %v, want 1.66", a.HealthFactor)
	}
	// Leverage = 30000/15000
	if !almost(a.Leverage, 2) {
		t.Errorf("Leverage = %v, want 2", a.Leverage)
	}
	if !a.UtilizationRate.Equal(50) {
		t.Errorf("UtilizationRate = %v, want 50%%", a.UtilizationRate)
	}
	// NetAPY = (30000×2 − 15000×8)/15000 = −4
	if !a.NetAPY.Equal(-4) {
		t.Errorf("NetAPY = %v, want -4%%", a.NetAPY)
	}
}

func TestAnalyzeExposure_HealthFactorNoDebt(t *testing.T) {
	a := AnalyzeExposure([]LendingPosition{
		lend("WETH", 5, 0, 3000, 2.0, 0, 0.83),
	})
	if !math.IsInf(a.HealthFactor, 1) {
		t.Errorf("HealthFactor = %v, want +Inf when nothing is borrowed", a.HealthFactor)
	}
}

func TestAnalyzeExposure_LeverageDegeneracy(t *testing.T) {
	// Supplied exactly equals borrowed: zero net value, leverage 1 by convention.
	a := AnalyzeExposure([]LendingPosition{
		lend("USDC", 1000, 1000, 1, 3.0, 5.0, 0.78),
	})
	if a.NetValueUSD != 0 {
		t.Fatalf("NetValueUSD = %v, want 0", a.NetValueUSD)
	}
	if a.Leverage != 1 {
		t.Errorf("Leverage = %v, want 1 on a fully offset book", a.Leverage)
	}
	if !a.NetAPY.Equal(0) {
		t.Errorf("NetAPY = %v, want 0 on zero net value", a.NetAPY)
	}
}

func TestAnalyzeExposure_EmptyBook(t *testing.T) {
	a := AnalyzeExposure(nil)
	if !math.IsInf(a.HealthFactor, 1) {
		t.Errorf("HealthFactor = %v, want +Inf", a.HealthFactor)
	}
	if a.Leverage != 1 {
		t.Errorf("Leverage = %v, want 1", a.Leverage)
	}
	if !a.UtilizationRate.Equal(0) {
		t.Errorf("UtilizationRate = %v, want 0", a.UtilizationRate)
	}
	if len(a.ByAsset) != 0 || len(a.Loops) != 0 {
		t.Errorf("empty book produced assets %v loops %v", a.ByAsset, a.Loops)
	}
}

func TestAnalyzeExposure_DuplicateRowsAreSummed(t *testing.T) {
	a := AnalyzeExposure([]LendingPosition{
		lend("WETH", 2, 0, 3000, 2.0, 0, 0.83),
		lend("WETH", 3, 1, 3000, 2.0, 3.0, 0.83),
	})
	aggr, ok := a.ByAsset["WETH"]
	if !ok {
		t.Fatal("missing WETH aggregate")
	}
	if !almost(aggr.Supplied, 5) || !almost(aggr.Borrowed, 1) {
		t.Errorf("aggregate = %+v, want supplied 5 borrowed 1", aggr)
	}
	if !almost(aggr.Net, 4) || !almost(aggr.NetUSD, 12000) {
		t.Errorf("aggregate net = %v/%v, want 4/12000", aggr.Net, aggr.NetUSD)
	}
	if aggr.Direction != Long {
		t.Errorf("Direction = %v, want LONG", aggr.Direction)
	}
}

func TestAnalyzeExposure_ByAssetKeepsRawSymbols(t *testing.T) {
	// The per-protocol view must not collapse wrapped variants.
	a := AnalyzeExposure([]LendingPosition{
		lend("WETH", 1, 0, 3000, 2.0, 0, 0.83),
		lend("wstETH", 1, 0, 3500, 2.5, 0, 0.80),
	})
	if len(a.ByAsset) != 2 {
		t.Fatalf("ByAsset has %d entries, want 2 (raw symbols)", len(a.ByAsset))
	}
	if _, ok := a.ByAsset["wstETH"]; !ok {
		t.Error("wstETH was collapsed; per-asset view must group by raw symbol")
	}
}

func TestAnalyzeExposure_LoopDetection(t *testing.T) {
	a := AnalyzeExposure([]LendingPosition{
		lend("USDC", 100, 40, 1, 4.0, 6.0, 0.78), // looped
		lend("WETH", 10, 0, 3000, 2.0, 0, 0.83),  // supply only
		lend("DAI", 0, 50, 1, 0, 7.0, 0.77),      // borrow only
	})

	if len(a.Loops) != 1 {
		t.Fatalf("Loops = %v, want exactly the USDC loop", a.Loops)
	}
	loop := a.Loops[0]
	if loop.Asset != "USDC" {
		t.Errorf("loop asset = %q, want USDC", loop.Asset)
	}
	// 100/(100−40)
	if !almost(loop.EffectiveLeverage, 100.0/60.0) {
		t.Errorf("EffectiveLeverage = %v, want %v", loop.EffectiveLeverage, 100.0/60.0)
	}
}

func TestAnalyzeExposure_FullLoopSentinel(t *testing.T) {
	a := AnalyzeExposure([]LendingPosition{
		lend("USDC", 100, 100, 1, 4.0, 6.0, 0.78),
	})
	if len(a.Loops) != 1 {
		t.Fatalf("Loops = %v, want one entry", a.Loops)
	}
	if !math.IsInf(a.Loops[0].EffectiveLeverage, 1) {
		t.Errorf("EffectiveLeverage = %v, want +Inf when supplied == borrowed", a.Loops[0].EffectiveLeverage)
	}
}

func TestAnalyzeExposure_DoesNotMutateInput(t *testing.T) {
	positions := []LendingPosition{lend("WETH", 10, 2, 3000, 2.0, 3.0, 0.83)}
	before := positions[0]
	AnalyzeExposure(positions)
	if positions[0] != before {
		t.Errorf("input mutated: %+v", positions[0])
	}
}
