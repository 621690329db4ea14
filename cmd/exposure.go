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

// exposureCmd holds the flags for the 'exposure' subcommand.
type exposureCmd struct{}

func (*exposureCmd) Name() string     { return "exposure" }
func (*exposureCmd) Synopsis() string { return "display the lending book solvency summary" }
func (*exposureCmd) Usage() string {
	return `hfo exposure [-snapshot <file>]

  Displays the lending exposure analysis: totals, health factor,
  leverage, utilization, net APY, the per-asset breakdown and any
  looped positions.
`
}

func (c *exposureCmd) SetFlags(f *flag.FlagSet) {}

func (c *exposureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := DecodeSnapshotFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis := hedgefolio.AnalyzeExposure(snapshot.Lending)
	printMarkdown(renderer.ExposureMarkdown(analysis))
	return subcommands.ExitSuccess
}
