// Package renderer turns the hedgefolio reports into markdown and CSV.
package renderer

import (
	"fmt"
	"math"

	"github.com/hedgefolio/hedgefolio"
)

// usd formats a dollar figure for a table cell.
func usd(v float64) string {
	return hedgefolio.USD(v).String()
}

// signedUSD formats a dollar figure with an explicit sign, "-" for zero.
func signedUSD(v float64) string {
	return hedgefolio.USD(v).SignedString()
}

// ratio formats a unitless multiplier such as health factor or leverage,
// where +Inf is a legitimate sentinel ("no debt", "fully looped").
func ratio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.2f", v)
}

// amount formats an asset quantity.
func amount(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
