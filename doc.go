// Package hedgefolio aggregates a user's money-market lending positions
// and perpetual-futures positions into unified risk and hedging metrics.
//
// The core of the package is three stateless calculators:
//   - Exposure Analysis: solvency, leverage and yield over the lending
//     book (AnalyzeExposure), including health factor and detection of
//     looped (recursively leveraged) positions.
//   - Hedge Analysis: cross-protocol matching of lending exposure against
//     derivative exposure by normalized symbol (AnalyzeHedge), producing
//     per-asset hedge ratios, effectiveness buckets, portfolio totals and
//     a funding-aware blended APY.
//   - Greeks: a simplified sensitivity report (CalculateGreeks) covering
//     directional exposure, leverage, rate shock and net carry.
//
// The calculators are pure: they hold no state, perform no I/O, never
// mutate their inputs and resolve every degenerate division to a
// documented sentinel instead of an error. Everything that talks to the
// outside world (the aave and hyperliquid fetchers, the price service)
// lives at the edges and only hands the core already-normalized records.
//
// This package serves as the foundational logic for the `hfo`
// command-line tool.
package hedgefolio
