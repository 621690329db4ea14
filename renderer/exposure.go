package renderer

import (
	"bytes"
	"sort"

	"github.com/hedgefolio/hedgefolio"
	md "github.com/nao1215/markdown"
)

// ExposureMarkdown renders the lending exposure analysis to a markdown string.
func ExposureMarkdown(a *hedgefolio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Lending Exposure")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Supplied", usd(a.TotalSuppliedUSD)},
			{"Total Borrowed", usd(a.TotalBorrowedUSD)},
			{"Net Value", usd(a.NetValueUSD)},
			{"Health Factor", ratio(a.HealthFactor)},
			{"Leverage", ratio(a.Leverage) + "x"},
			{"Utilization", a.UtilizationRate.String()},
			{"Net APY", a.NetAPY.SignedString()},
		},
	})

	if len(a.ByAsset) > 0 {
		doc.H2("By Asset")
		assets := make([]string, 0, len(a.ByAsset))
		for asset := range a.ByAsset {
			assets = append(assets, asset)
		}
		sort.Strings(assets)

		table := md.TableSet{
			Header: []string{"Asset", "Supplied", "Borrowed", "Net", "Net USD", "Direction"},
		}
		for _, asset := range assets {
			e := a.ByAsset[asset]
			table.Rows = append(table.Rows, []string{
				asset,
				amount(e.Supplied),
				amount(e.Borrowed),
				amount(e.Net),
				signedUSD(e.NetUSD),
				string(e.Direction),
			})
		}
		doc.Table(table)
	}

	if len(a.Loops) > 0 {
		doc.H2("Looped Positions")
		table := md.TableSet{
			Header: []string{"Asset", "Supplied", "Borrowed", "Effective Leverage"},
		}
		for _, loop := range a.Loops {
			table.Rows = append(table.Rows, []string{
				loop.Asset,
				amount(loop.Supplied),
				amount(loop.Borrowed),
				ratio(loop.EffectiveLeverage) + "x",
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
