package hedgefolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file contains the snapshot import/export format.
// It should remain a single human readable JSON file, so a fetched state
// can be archived, diffed, and replayed through the calculators offline.

// Snapshot is one materialized batch of positions: everything the three
// calculators need for a single analysis call.
type Snapshot struct {
	Lending []LendingPosition `json:"lending"`
	Hedge   []HedgePosition   `json:"hedge"`
	Prices  PriceTable        `json:"prices"`
}

// DecodeSnapshot reads a snapshot from 'r' in the import/export format.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot parse snapshot: %w", err)
	}
	if s.Prices == nil {
		s.Prices = PriceTable{}
	}
	return &s, nil
}

// EncodeSnapshot writes the snapshot to 'w', indented for readability.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}
