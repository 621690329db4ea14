package renderer

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/hedgefolio/hedgefolio"
)

func sampleLending() []hedgefolio.LendingPosition {
	return []hedgefolio.LendingPosition{
		{
			Asset: "WETH", Name: "Wrapped Ether",
			Supplied: 2, SuppliedUSD: 6000,
			SupplyAPR: 1.9, LiquidationThreshold: 0.83, Price: 3000,
		},
		{
			Asset: "USDC", Name: "USD Coin",
			Borrowed: 1500, BorrowedUSD: 1500,
			BorrowAPR: 8.2, LiquidationThreshold: 0.78, Price: 1,
		},
	}
}

func sampleHedges() []hedgefolio.HedgePosition {
	return []hedgefolio.HedgePosition{
		{
			Coin: "ETH", Size: 1.5, Side: hedgefolio.Short,
			EntryPrice: 3100, Leverage: 3, LeverageType: hedgefolio.CrossLeverage,
			NotionalValue: 4650, FundingRateAnnualized: 10.95,
		},
	}
}

func TestExposureMarkdown(t *testing.T) {
	a := hedgefolio.AnalyzeExposure(sampleLending())
	got := ExposureMarkdown(a)

	for _, want := range []string{
		"# Lending Exposure",
		"Health Factor",
		"$6,000.00",
		"## By Asset",
		"WETH",
		"USDC",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ExposureMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestExposureMarkdown_InfinityHealthFactor(t *testing.T) {
	a := hedgefolio.AnalyzeExposure(sampleLending()[:1]) // no debt
	if !math.IsInf(a.HealthFactor, 1) {
		t.Fatal("fixture should have no debt")
	}
	if got := ExposureMarkdown(a); !strings.Contains(got, "∞") {
		t.Errorf("ExposureMarkdown() should render the no-debt sentinel as ∞:\n%s", got)
	}
}

func TestHedgeMarkdown(t *testing.T) {
	ha := hedgefolio.AnalyzeHedge(sampleLending(), sampleHedges(), hedgefolio.PriceTable{"ETH": 3000, "USDC": 1}, nil)
	got := HedgeMarkdown(ha)

	for _, want := range []string{
		"# Hedge Analysis",
		"## Portfolio",
		"## Effectiveness",
		"## Yield",
		"Overall Hedge Ratio",
		"ETH",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HedgeMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestGreeksMarkdown(t *testing.T) {
	lending := sampleLending()
	g := hedgefolio.CalculateGreeks(lending, hedgefolio.AnalyzeExposure(lending))
	got := GreeksMarkdown(g)

	for _, want := range []string{"# Greeks", "Delta", "Gamma", "Vega", "Theta", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("GreeksMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestHedgeCSV(t *testing.T) {
	ha := hedgefolio.AnalyzeHedge(sampleLending(), sampleHedges(), hedgefolio.PriceTable{"ETH": 3000, "USDC": 1}, nil)

	var buf bytes.Buffer
	if err := HedgeCSV(&buf, ha); err != nil {
		t.Fatalf("HedgeCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	// header + one row per asset
	if len(records) != 1+len(ha.Assets) {
		t.Fatalf("csv has %d records, want %d", len(records), 1+len(ha.Assets))
	}
	if records[0][0] != "symbol" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "ETH" {
		t.Errorf("first row = %v, want the ETH record first", records[1])
	}
	for i, rec := range records {
		if len(rec) != len(records[0]) {
			t.Errorf("record %d has %d fields, want %d", i, len(rec), len(records[0]))
		}
	}
}
