package renderer

import (
	"bytes"
	"strings"

	"github.com/hedgefolio/hedgefolio"
	md "github.com/nao1215/markdown"
)

// HedgeMarkdown renders the cross-protocol hedge analysis to a markdown string.
func HedgeMarkdown(ha *hedgefolio.HedgeAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Hedge Analysis")

	if len(ha.Assets) > 0 {
		table := md.TableSet{
			Header: []string{"Asset", "Lending Net", "Lending USD", "Hedge", "Hedge USD", "Net USD", "Hedge Ratio"},
		}
		for _, ce := range ha.Assets {
			hedgeLeg := "-"
			if ce.Hedge.Side != hedgefolio.Neutral {
				hedgeLeg = string(ce.Hedge.Side) + " " + amount(ce.Hedge.Size)
			}
			hedgeRatio := "-"
			if !ce.HedgeRatio.IsZero() {
				hedgeRatio = ce.HedgeRatio.String()
			}
			table.Rows = append(table.Rows, []string{
				ce.Symbol,
				amount(ce.Lending.Net),
				signedUSD(ce.Lending.NetUSD),
				hedgeLeg,
				usd(ce.Hedge.SizeUSD),
				signedUSD(ce.NetUSD),
				hedgeRatio,
			})
		}
		doc.Table(table)
	}

	doc.H2("Portfolio")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Lending Exposure", usd(ha.AaveTotalUSD)},
			{"Perp Exposure", usd(ha.HyperliquidTotalUSD)},
			{"Net Exposure", signedUSD(ha.NetExposureUSD)},
			{"Lending Equity", usd(ha.AaveEquityUSD)},
			{"Perp Margin", usd(ha.HedgeMarginUSD)},
			{"Total Capital", usd(ha.TotalCapitalUSD)},
			{"Overall Hedge Ratio", ha.OverallHedgeRatio.String()},
		},
	})

	doc.H2("Effectiveness")
	doc.Table(md.TableSet{
		Header: []string{"Bucket", "Assets"},
		Rows: [][]string{
			{"Perfectly hedged", bucket(ha.PerfectlyHedged)},
			{"Over hedged", bucket(ha.OverHedged)},
			{"Partially hedged", bucket(ha.PartiallyHedged)},
			{"Unhedged", bucket(ha.Unhedged)},
		},
	})

	doc.H2("Yield")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Source", "APY"},
		Rows: [][]string{
			{"Lending (net)", ha.AaveNetAPY.SignedString()},
			{"Perp funding", ha.HyperliquidFundingAPY.SignedString()},
			{"Combined on capital", ha.CombinedNetAPY.SignedString()},
		},
	})

	return doc.String()
}

func bucket(symbols []string) string {
	if len(symbols) == 0 {
		return "-"
	}
	return strings.Join(symbols, ", ")
}
