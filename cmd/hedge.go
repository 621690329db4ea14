package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hedgefolio/hedgefolio"
	"github.com/hedgefolio/hedgefolio/renderer"
)

// hedgeCmd holds the flags for the 'hedge' subcommand.
type hedgeCmd struct {
	symbols string
}

func (*hedgeCmd) Name() string     { return "hedge" }
func (*hedgeCmd) Synopsis() string { return "display the cross-protocol hedge analysis" }
func (*hedgeCmd) Usage() string {
	return `hfo hedge [-snapshot <file>] [-symbols RAW=CANONICAL,...]

  Matches lending positions against perp positions by normalized symbol
  and displays per-asset hedge ratios, effectiveness buckets, portfolio
  totals and the blended APY.
`
}

func (c *hedgeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbols, "symbols", "", "Extra symbol mappings, e.g. PTWEETH=ETH,SFRAX=FRAX.")
}

func (c *hedgeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := DecodeSnapshotFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis := hedgefolio.AnalyzeHedge(snapshot.Lending, snapshot.Hedge, snapshot.Prices, symbolTable(c.symbols))
	printMarkdown(renderer.HedgeMarkdown(analysis))
	return subcommands.ExitSuccess
}
