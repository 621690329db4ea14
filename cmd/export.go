package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/hedgefolio/hedgefolio"
	"github.com/hedgefolio/hedgefolio/renderer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	symbols string
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the per-asset hedge rows as CSV" }
func (*exportCmd) Usage() string {
	return `hfo export [-snapshot <file>] [-o <file>]

  Runs the hedge analysis and writes the per-asset rows as CSV, raw
  numbers, ready for a spreadsheet. Writes to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbols, "symbols", "", "Extra symbol mappings, e.g. PTWEETH=ETH.")
	f.StringVar(&c.output, "o", "", "Output file (stdout by default).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := DecodeSnapshotFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	analysis := hedgefolio.AnalyzeHedge(snapshot.Lending, snapshot.Hedge, snapshot.Prices, symbolTable(c.symbols))
	if err := renderer.HedgeCSV(w, analysis); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
