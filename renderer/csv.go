package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hedgefolio/hedgefolio"
)

// HedgeCSV writes the per-asset hedge rows to 'w' as CSV, one line per
// asset in report order, numbers raw (no currency formatting) so the file
// loads straight into a spreadsheet.
func HedgeCSV(w io.Writer, ha *hedgefolio.HedgeAnalysis) error {
	cw := csv.NewWriter(w)
	header := []string{
		"symbol",
		"lending_net", "lending_net_usd", "lending_direction",
		"hedge_size", "hedge_usd", "hedge_side", "hedge_leverage", "funding_apy",
		"net_amount", "net_usd", "net_direction",
		"hedge_ratio",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}

	for _, ce := range ha.Assets {
		row := []string{
			ce.Symbol,
			f(ce.Lending.Net), f(ce.Lending.NetUSD), string(ce.Lending.Direction),
			f(ce.Hedge.Size), f(ce.Hedge.SizeUSD), string(ce.Hedge.Side), f(ce.Hedge.Leverage), f(ce.Hedge.FundingRateAnnualized),
			f(ce.NetAmount), f(ce.NetUSD), string(ce.NetDirection),
			f(float64(ce.HedgeRatio)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv row for %s: %w", ce.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(v float64) string {
	return fmt.Sprintf("%g", v)
}
