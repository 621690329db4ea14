package hedgefolio

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

/*
	CoinGecko simple price payload:

	{
	    "ethereum": {
	        "usd": 3421.87
	    }
	}
*/

// geckoIDs maps canonical symbols to CoinGecko coin ids. Symbols outside
// the map fall back to their lower-cased form, which is right for most
// smaller listings.
var geckoIDs = map[string]string{
	"ETH":   "ethereum",
	"BTC":   "bitcoin",
	"SOL":   "solana",
	"USDC":  "usd-coin",
	"USDT":  "tether",
	"DAI":   "dai",
	"GHO":   "gho",
	"AAVE":  "aave",
	"LINK":  "chainlink",
	"MATIC": "matic-network",
	"POL":   "polygon-ecosystem-token",
	"AVAX":  "avalanche-2",
	"BNB":   "binancecoin",
	"ARB":   "arbitrum",
	"OP":    "optimism",
}

const geckoBase = "https://api.coingecko.com/api/v3"

// PriceService resolves normalized symbols to USD spot prices, with a
// shared time-expiring cache so a burst of lookups inside one analysis
// run hits the endpoint once per symbol.
type PriceService struct {
	client *http.Client
	// listClient caches the coin listing on disk for a day, the listing
	// barely moves and weighs a few MB.
	listClient *http.Client
	base       string
	cache      *priceCache

	ids map[string]string // resolved symbol -> coin id
}

// NewPriceService returns a price service over the CoinGecko public API.
// Prices are cached for 'ttl' (5 minutes is a sensible default for a CLI).
func NewPriceService(ttl time.Duration) *PriceService {
	return &PriceService{
		client:     new(http.Client),
		listClient: NewDailyCachingClient(),
		base:       geckoBase,
		cache:      newPriceCache(ttl),
		ids:        make(map[string]string),
	}
}

// resolveID maps a normalized symbol to its CoinGecko coin id: the static
// table first, then the full coin listing, then the lower-cased symbol as
// a last guess.
func (s *PriceService) resolveID(symbol string) string {
	if id, ok := geckoIDs[symbol]; ok {
		return id
	}
	if id, ok := s.ids[symbol]; ok {
		return id
	}

	var coins []struct {
		ID     string `json:"id"`
		Symbol string `json:"symbol"`
	}
	if err := jwget(s.listClient, s.base+"/coins/list", &coins); err != nil {
		log.Printf("cannot fetch coin listing (ignored): %v", err)
		return strings.ToLower(symbol)
	}
	for _, c := range coins {
		// the listing holds duplicate symbols, keep the first.
		if strings.EqualFold(c.Symbol, symbol) {
			s.ids[symbol] = c.ID
			return c.ID
		}
	}
	return strings.ToLower(symbol)
}

// Price returns the USD spot price of a normalized symbol.
func (s *PriceService) Price(symbol string) (float64, error) {
	symbol = strings.ToUpper(symbol)
	if v, ok := s.cache.lookup(symbol); ok {
		return v, nil
	}

	id := s.resolveID(symbol)

	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", s.base, url.QueryEscape(id))
	var jobj any
	if err := jwget(s.client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := fmt.Sprintf("$.%s.usd", id)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}

	s.cache.store(symbol, val)
	return val, nil
}

// Table builds an immutable PriceTable for the given normalized symbols.
// A symbol whose price cannot be fetched is skipped (the calculators read
// missing entries as 0), the first error is reported alongside the table.
func (s *PriceService) Table(symbols []string) (PriceTable, error) {
	table := make(PriceTable, len(symbols))
	var firstErr error
	for _, sym := range symbols {
		v, err := s.Price(sym)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		table[strings.ToUpper(sym)] = v
	}
	return table, firstErr
}
