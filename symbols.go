package hedgefolio

import "strings"

// SymbolTable collapses wrapped and staked token variants onto their
// canonical underlying symbol, so that a lending position in wstETH can be
// matched against a perp position in ETH. Cross-protocol matching is
// always keyed on the normalized symbol, never on the raw one.
//
// The table is injected into the calculators rather than hard-coded, so
// callers can extend it with additional wrapped-asset families.
type SymbolTable map[string]string

// Normalize returns the canonical symbol for a raw one. Lookup is
// case-insensitive; unknown symbols map to themselves (upper-cased).
func (t SymbolTable) Normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if canonical, ok := t[s]; ok {
		return canonical
	}
	return s
}

// Extend returns a copy of the table with extra mappings added, leaving
// the receiver untouched.
func (t SymbolTable) Extend(extra map[string]string) SymbolTable {
	out := make(SymbolTable, len(t)+len(extra))
	for k, v := range t {
		out[strings.ToUpper(k)] = v
	}
	for k, v := range extra {
		out[strings.ToUpper(k)] = v
	}
	return out
}

// DefaultSymbols is the standard wrapped→canonical mapping covering the
// usual ETH and BTC wrapper families plus the bridged-stablecoin aliases.
func DefaultSymbols() SymbolTable {
	return SymbolTable{
		"WETH":    "ETH",
		"STETH":   "ETH",
		"WSTETH":  "ETH",
		"CBETH":   "ETH",
		"RETH":    "ETH",
		"WEETH":   "ETH",
		"OSETH":   "ETH",
		"ETHX":    "ETH",
		"WBTC":    "BTC",
		"CBBTC":   "BTC",
		"TBTC":    "BTC",
		"LBTC":    "BTC",
		"USDC.E":  "USDC",
		"USDBC":   "USDC",
		"WSOL":    "SOL",
		"WMATIC":  "MATIC",
		"WPOL":    "POL",
		"WAVAX":   "AVAX",
		"WBNB":    "BNB",
		"WFTM":    "FTM",
		"WSTKSCR": "SCR",
	}
}
