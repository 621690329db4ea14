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

// greeksCmd holds the flags for the 'greeks' subcommand.
type greeksCmd struct{}

func (*greeksCmd) Name() string     { return "greeks" }
func (*greeksCmd) Synopsis() string { return "display the sensitivity (greeks) report" }
func (*greeksCmd) Usage() string {
	return `hfo greeks [-snapshot <file>]

  Displays the simplified sensitivity report: directional USD delta
  per asset, leverage, the cost of a +1pp borrow-rate shock and the
  net carry projections.
`
}

func (c *greeksCmd) SetFlags(f *flag.FlagSet) {}

func (c *greeksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := DecodeSnapshotFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis := hedgefolio.AnalyzeExposure(snapshot.Lending)
	greeks := hedgefolio.CalculateGreeks(snapshot.Lending, analysis)
	printMarkdown(renderer.GreeksMarkdown(greeks))
	return subcommands.ExitSuccess
}
