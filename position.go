package hedgefolio

// This file defines the position records the analytics engine consumes.
// They are plain immutable snapshots: the fetch layer builds them, the
// calculators only read them.

// Side is the direction of an exposure or a derivative position.
type Side string

const (
	Long    Side = "LONG"
	Short   Side = "SHORT"
	Neutral Side = "NEUTRAL"
)

// SideOf derives the direction from a signed quantity.
func SideOf(v float64) Side {
	switch {
	case v > 0:
		return Long
	case v < 0:
		return Short
	default:
		return Neutral
	}
}

// LeverageType distinguishes how margin backs a derivative position.
type LeverageType string

const (
	CrossLeverage    LeverageType = "cross"
	IsolatedLeverage LeverageType = "isolated"
)

// LendingPosition is one asset row on the money market: what is supplied
// as collateral and what is borrowed against it, already priced in USD by
// the fetch layer (SuppliedUSD = Supplied×Price, BorrowedUSD =
// Borrowed×Price). APRs are annualized percentages (3.25 means 3.25%),
// LiquidationThreshold is a fraction in [0,1].
type LendingPosition struct {
	Asset                string  `json:"asset"`
	Name                 string  `json:"name"`
	Supplied             float64 `json:"supplied"`
	Borrowed             float64 `json:"borrowed"`
	SuppliedUSD          float64 `json:"suppliedUSD"`
	BorrowedUSD          float64 `json:"borrowedUSD"`
	SupplyAPR            float64 `json:"supplyAPR"`
	BorrowAPR            float64 `json:"borrowAPR"`
	LiquidationThreshold float64 `json:"liquidationThreshold"`
	LiquidationBonus     float64 `json:"liquidationBonus"`
	Price                float64 `json:"price"`
	Decimals             int     `json:"decimals"`
}

// HedgePosition is one open perpetual-futures position. Size is unsigned;
// the direction lives in Side. NotionalValue = Size×EntryPrice.
// FundingRate is the raw per-period rate as published by the exchange,
// FundingRateAnnualized the same rate expressed as a yearly percentage.
type HedgePosition struct {
	Coin                  string       `json:"coin"`
	Size                  float64      `json:"size"`
	Side                  Side         `json:"side"`
	EntryPrice            float64      `json:"entryPrice"`
	Leverage              float64      `json:"leverage"`
	LeverageType          LeverageType `json:"leverageType"`
	UnrealizedPnl         float64      `json:"unrealizedPnl"`
	NotionalValue         float64      `json:"notionalValue"`
	FundingRate           float64      `json:"fundingRate"`
	FundingRateAnnualized float64      `json:"fundingRateAnnualized"`
}

// IsOpen reports whether the position actually carries exposure.
// A NEUTRAL side or a zero size both mean "no position".
func (p HedgePosition) IsOpen() bool {
	return p.Side != Neutral && p.Size != 0
}

// SignedSize is the size with the direction folded in: positive for
// LONG, negative for SHORT, zero otherwise.
func (p HedgePosition) SignedSize() float64 {
	switch p.Side {
	case Long:
		return p.Size
	case Short:
		return -p.Size
	}
	return 0
}

// SignedNotional is the USD notional with the direction folded in.
func (p HedgePosition) SignedNotional() float64 {
	switch p.Side {
	case Long:
		return p.NotionalValue
	case Short:
		return -p.NotionalValue
	}
	return 0
}

// PriceTable maps a normalized asset symbol to its USD spot price.
// The calculators read it as an immutable snapshot; a missing entry is
// worth 0 by convention, never an error.
type PriceTable map[string]float64
