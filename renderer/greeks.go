package renderer

import (
	"bytes"
	"sort"

	"github.com/hedgefolio/hedgefolio"
	md "github.com/nao1215/markdown"
)

// GreeksMarkdown renders the sensitivity report to a markdown string.
func GreeksMarkdown(g *hedgefolio.Greeks) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Greeks")

	doc.H2("Delta (directional exposure)")
	assets := make([]string, 0, len(g.Delta.ByAsset))
	for asset := range g.Delta.ByAsset {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Exposure"},
	}
	for _, asset := range assets {
		table.Rows = append(table.Rows, []string{asset, signedUSD(g.Delta.ByAsset[asset])})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(signedUSD(g.Delta.TotalUSD))})
	doc.Table(table)

	doc.H2("Gamma (leverage)")
	doc.PlainText("Portfolio leverage: " + ratio(g.Gamma.Leverage) + "x")

	doc.H2("Vega (rate sensitivity, +1pp borrow rates)")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Horizon", "Cost"},
		Rows: [][]string{
			{"Yearly", usd(g.Vega.YearlyImpactUSD)},
			{"Monthly", usd(g.Vega.MonthlyImpactUSD)},
		},
	})

	doc.H2("Theta (net carry)")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Horizon", "Carry"},
		Rows: [][]string{
			{"Daily", signedUSD(g.Theta.DailyUSD)},
			{"Monthly", signedUSD(g.Theta.MonthlyUSD)},
			{"Yearly", signedUSD(g.Theta.YearlyUSD)},
		},
	})

	return doc.String()
}
