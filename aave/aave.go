// Package aave reads a user's money-market reserves from an Aave data API
// and converts them into lending position records.
//
// Like the root price service, this is fetch-layer code: the core
// calculators only ever see the LendingPosition records built here.
package aave

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hedgefolio/hedgefolio"
)

// DefaultBaseURL is the public Aave data API.
const DefaultBaseURL = "https://aave-api-v2.aave.com/data"

// Client queries user reserve data for one chain.
type Client struct {
	client  *http.Client
	base    string
	chainID int
}

// New returns a client on the public data API for the given chain
// (1 mainnet, 42161 Arbitrum, 8453 Base, ...).
func New(chainID int) *Client { return NewWithBase(DefaultBaseURL, chainID) }

// NewWithBase returns a client on a custom endpoint.
func NewWithBase(base string, chainID int) *Client {
	return &Client{client: new(http.Client), base: strings.TrimRight(base, "/"), chainID: chainID}
}

/*
	user-reserves payload (one entry per reserve the user touched):

	[
	    {
	        "symbol": "WETH",
	        "name": "Wrapped Ether",
	        "underlyingBalance": "2.0",
	        "variableBorrows": "0",
	        "liquidityRate": "0.019",
	        "variableBorrowRate": "0.026",
	        "reserveLiquidationThreshold": 8300,
	        "reserveLiquidationBonus": 10500,
	        "priceInUSD": "3000.0",
	        "decimals": 18
	    }
	]

	Rates are fractions per year, liquidation parameters are in basis
	points with the bonus offset by 100% (10500 means a 5% bonus).
*/

type userReserve struct {
	Symbol                      string `json:"symbol"`
	Name                        string `json:"name"`
	UnderlyingBalance           string `json:"underlyingBalance"`
	VariableBorrows             string `json:"variableBorrows"`
	LiquidityRate               string `json:"liquidityRate"`
	VariableBorrowRate          string `json:"variableBorrowRate"`
	ReserveLiquidationThreshold int    `json:"reserveLiquidationThreshold"`
	ReserveLiquidationBonus     int    `json:"reserveLiquidationBonus"`
	PriceInUSD                  string `json:"priceInUSD"`
	Decimals                    int    `json:"decimals"`
}

// Positions returns the user's lending positions, USD legs derived and
// rates converted to annual percentages. Reserves the user never touched
// (zero supplied and zero borrowed) are skipped.
func (c *Client) Positions(user string) ([]hedgefolio.LendingPosition, error) {
	addr := fmt.Sprintf("%s/user-reserves?chainId=%d&user=%s", c.base, c.chainID, url.QueryEscape(user))
	var reserves []userReserve
	if err := jwget(c.client, addr, &reserves); err != nil {
		return nil, fmt.Errorf("cannot fetch user reserves for %s: %w", user, err)
	}

	positions := make([]hedgefolio.LendingPosition, 0, len(reserves))
	for _, r := range reserves {
		supplied, err := strconv.ParseFloat(r.UnderlyingBalance, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse balance %q for %s: %w", r.UnderlyingBalance, r.Symbol, err)
		}
		borrowed, err := strconv.ParseFloat(r.VariableBorrows, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse borrows %q for %s: %w", r.VariableBorrows, r.Symbol, err)
		}
		if supplied == 0 && borrowed == 0 {
			continue
		}
		price, err := strconv.ParseFloat(r.PriceInUSD, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse price %q for %s: %w", r.PriceInUSD, r.Symbol, err)
		}

		positions = append(positions, hedgefolio.LendingPosition{
			Asset:                r.Symbol,
			Name:                 r.Name,
			Supplied:             supplied,
			Borrowed:             borrowed,
			SuppliedUSD:          supplied * price,
			BorrowedUSD:          borrowed * price,
			SupplyAPR:            parseRate(r.LiquidityRate),
			BorrowAPR:            parseRate(r.VariableBorrowRate),
			LiquidationThreshold: float64(r.ReserveLiquidationThreshold) / 10000,
			LiquidationBonus:     float64(r.ReserveLiquidationBonus-10000) / 10000,
			Price:                price,
			Decimals:             r.Decimals,
		})
	}
	return positions, nil
}

// parseRate converts a yearly fraction ("0.019") to a percentage (1.9).
func parseRate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * 100
}
