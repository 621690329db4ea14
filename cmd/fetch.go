package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/hedgefolio/hedgefolio"
	"github.com/hedgefolio/hedgefolio/aave"
	"github.com/hedgefolio/hedgefolio/hyperliquid"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	lendingAddress string
	perpAddress    string
	chainID        int
	output         string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch positions and prices into a snapshot file" }
func (*fetchCmd) Usage() string {
	return `hfo fetch -lending <address> -perp <address> [-chain <id>] [-o <file>]

  Fetches the lending positions, the perp positions and the spot prices
  of every asset involved, and writes them as one snapshot file the
  analysis commands run on.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lendingAddress, "lending", "", "Money-market account address.")
	f.StringVar(&c.perpAddress, "perp", "", "Perp exchange account address (defaults to the lending address).")
	f.IntVar(&c.chainID, "chain", 1, "Chain id of the lending deployment (1 mainnet, 42161 Arbitrum, 8453 Base).")
	f.StringVar(&c.output, "o", "", "Output file (defaults to the -snapshot flag).")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.lendingAddress == "" {
		fmt.Fprintln(os.Stderr, "Error: -lending address is required")
		return subcommands.ExitUsageError
	}
	if c.perpAddress == "" {
		c.perpAddress = c.lendingAddress
	}

	lending, err := aave.New(c.chainID).Positions(c.lendingAddress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching lending positions: %v\n", err)
		return subcommands.ExitFailure
	}

	hedge, err := hyperliquid.New().Positions(c.perpAddress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching perp positions: %v\n", err)
		return subcommands.ExitFailure
	}

	// Price every normalized symbol seen on either side.
	symbols := hedgefolio.DefaultSymbols()
	seen := make(map[string]bool)
	var wanted []string
	for _, p := range lending {
		sym := symbols.Normalize(p.Asset)
		if !seen[sym] {
			seen[sym] = true
			wanted = append(wanted, sym)
		}
	}
	for _, h := range hedge {
		sym := symbols.Normalize(h.Coin)
		if !seen[sym] {
			seen[sym] = true
			wanted = append(wanted, sym)
		}
	}
	prices, err := hedgefolio.NewPriceService(5 * time.Minute).Table(wanted)
	if err != nil {
		// Analyses degrade gracefully on missing prices; keep going.
		log.Printf("some prices could not be fetched: %v", err)
	}

	snapshot := &hedgefolio.Snapshot{Lending: lending, Hedge: hedge, Prices: prices}

	filename := c.output
	if filename == "" {
		filename = *snapshotFile
	}
	out, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating snapshot file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := hedgefolio.EncodeSnapshot(out, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %d lending and %d perp positions to %s\n", len(lending), len(hedge), filename)
	return subcommands.ExitSuccess
}
