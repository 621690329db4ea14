// Package cmd implements the CLI application to analyze a hedged
// lending book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hedgefolio/hedgefolio"
)

// Commands is the list of subcommands the application registers.
// A main package will iterate it and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&exposureCmd{},
	&hedgeCmd{},
	&greeksCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot", "snapshot.json", "Path to the positions snapshot file (JSON format)")

// DecodeSnapshotFile loads the snapshot the analysis commands run on.
func DecodeSnapshotFile() (*hedgefolio.Snapshot, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q (run 'hfo fetch' first): %w", *snapshotFile, err)
	}
	defer f.Close()
	return hedgefolio.DecodeSnapshot(f)
}

// symbolTable builds the normalization table for this run. Extra
// mappings come as comma-separated RAW=CANONICAL pairs.
func symbolTable(extra string) hedgefolio.SymbolTable {
	symbols := hedgefolio.DefaultSymbols()
	if extra == "" {
		return symbols
	}
	added := make(map[string]string)
	for _, pair := range strings.Split(extra, ",") {
		raw, canonical, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		added[raw] = canonical
	}
	return symbols.Extend(added)
}
