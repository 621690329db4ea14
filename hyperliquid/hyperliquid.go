// Package hyperliquid reads a user's perpetual-futures account from the
// Hyperliquid info API and converts it into hedge position records.
//
// It is a pure fetch layer: everything it returns is an immutable
// snapshot, and all analysis happens in the root package.
package hyperliquid

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/hedgefolio/hedgefolio"
)

// DefaultBaseURL is the public mainnet endpoint.
const DefaultBaseURL = "https://api.hyperliquid.xyz"

// Funding on Hyperliquid accrues hourly; annualized = hourly × 24 × 365,
// expressed as a percentage.
const hoursPerYear = 24 * 365

// Client queries the info API.
type Client struct {
	client *http.Client
	base   string
}

// New returns a client on the public mainnet API.
func New() *Client { return NewWithBase(DefaultBaseURL) }

// NewWithBase returns a client on a custom endpoint (testnet, proxy).
func NewWithBase(base string) *Client {
	return &Client{client: new(http.Client), base: strings.TrimRight(base, "/")}
}

/*
	clearinghouseState payload (one entry per open position):

	{
	    "assetPositions": [
	        {
	            "type": "oneWay",
	            "position": {
	                "coin": "ETH",
	                "szi": "-1.5",
	                "entryPx": "3100.0",
	                "positionValue": "4650.0",
	                "unrealizedPnl": "150.0",
	                "leverage": { "type": "cross", "value": 3 }
	            }
	        }
	    ]
	}
*/

type clearinghouseState struct {
	AssetPositions []struct {
		Position struct {
			Coin          string `json:"coin"`
			Szi           string `json:"szi"`
			EntryPx       string `json:"entryPx"`
			PositionValue string `json:"positionValue"`
			UnrealizedPnl string `json:"unrealizedPnl"`
			Leverage      struct {
				Type  string  `json:"type"`
				Value float64 `json:"value"`
			} `json:"leverage"`
		} `json:"position"`
	} `json:"assetPositions"`
}

// Positions returns the user's open perp positions, funding-enriched.
// Closed books come back as an empty slice, not an error.
func (c *Client) Positions(user string) ([]hedgefolio.HedgePosition, error) {
	var state clearinghouseState
	err := jwpost(c.client, c.base+"/info", map[string]string{
		"type": "clearinghouseState",
		"user": user,
	}, &state)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch clearinghouse state for %s: %w", user, err)
	}

	funding, err := c.fundingRates()
	if err != nil {
		// missing funding rates read as 0 on the positions
		funding = map[string]float64{}
	}

	positions := make([]hedgefolio.HedgePosition, 0, len(state.AssetPositions))
	for _, ap := range state.AssetPositions {
		p := ap.Position
		szi, err := strconv.ParseFloat(p.Szi, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse size %q for %s: %w", p.Szi, p.Coin, err)
		}
		entry := parseFloat(p.EntryPx)
		notional := parseFloat(p.PositionValue)
		rate := funding[p.Coin]

		positions = append(positions, hedgefolio.HedgePosition{
			Coin:                  p.Coin,
			Size:                  math.Abs(szi),
			Side:                  hedgefolio.SideOf(szi),
			EntryPrice:            entry,
			Leverage:              p.Leverage.Value,
			LeverageType:          hedgefolio.LeverageType(p.Leverage.Type),
			UnrealizedPnl:         parseFloat(p.UnrealizedPnl),
			NotionalValue:         notional,
			FundingRate:           rate,
			FundingRateAnnualized: rate * hoursPerYear * 100,
		})
	}
	return positions, nil
}

// fundingRates returns the current hourly funding rate per coin.
//
// metaAndAssetCtxs is a heterogeneous 2-element array: the universe meta
// first, then one context per asset in the same order carrying the
// current funding rate. Decoded loosely for that reason.
func (c *Client) fundingRates() (map[string]float64, error) {
	var payload []interface{}
	err := jwpost(c.client, c.base+"/info", map[string]string{"type": "metaAndAssetCtxs"}, &payload)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch funding rates: %w", err)
	}
	if len(payload) != 2 {
		return nil, fmt.Errorf("unexpected metaAndAssetCtxs shape: %d elements", len(payload))
	}

	meta, ok := payload[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected meta shape")
	}
	universe, _ := meta["universe"].([]any)
	contexts, _ := payload[1].([]any)

	rates := make(map[string]float64, len(universe))
	for i, u := range universe {
		if i >= len(contexts) {
			break
		}
		asset, ok := u.(map[string]any)
		if !ok {
			continue
		}
		name, _ := asset["name"].(string)
		ctx, ok := contexts[i].(map[string]any)
		if !ok {
			continue
		}
		if f, ok := ctx["funding"].(string); ok {
			rates[name] = parseFloat(f)
		}
	}
	return rates, nil
}

// parseFloat reads an API number-as-string, 0 when absent or malformed.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
