package hyperliquid

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hedgefolio/hedgefolio"
)

const clearinghouseFixture = `{
  "assetPositions": [
    {
      "type": "oneWay",
      "position": {
        "coin": "ETH",
        "szi": "-1.5",
        "entryPx": "3100.0",
        "positionValue": "4650.0",
        "unrealizedPnl": "150.0",
        "leverage": {"type": "cross", "value": 3}
      }
    },
    {
      "type": "oneWay",
      "position": {
        "coin": "BTC",
        "szi": "0.02",
        "entryPx": "60000.0",
        "positionValue": "1200.0",
        "unrealizedPnl": "-12.5",
        "leverage": {"type": "isolated", "value": 5}
      }
    }
  ]
}`

const metaFixture = `[
  {"universe": [{"name": "BTC"}, {"name": "ETH"}]},
  [{"funding": "0.0000100"}, {"funding": "0.0000125"}]
]`

// fakeInfo serves the two info request types the client issues.
func fakeInfo(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("malformed info request: %v", err)
		}
		switch req["type"] {
		case "clearinghouseState":
			w.Write([]byte(clearinghouseFixture))
		case "metaAndAssetCtxs":
			w.Write([]byte(metaFixture))
		default:
			t.Errorf("unexpected info request type %q", req["type"])
			http.Error(w, "unknown type", http.StatusBadRequest)
		}
	}))
}

func TestClient_Positions(t *testing.T) {
	srv := fakeInfo(t)
	defer srv.Close()

	positions, err := NewWithBase(srv.URL).Positions("0xabc")
	if err != nil {
		t.Fatalf("Positions() unexpected error = %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("Positions() returned %d positions, want 2", len(positions))
	}

	eth := positions[0]
	if eth.Coin != "ETH" || eth.Side != hedgefolio.Short {
		t.Errorf("eth = %+v, want a SHORT ETH position", eth)
	}
	if eth.Size != 1.5 {
		t.Errorf("eth.Size = %v, want 1.5 (unsigned)", eth.Size)
	}
	if eth.EntryPrice != 3100 || eth.NotionalValue != 4650 {
		t.Errorf("eth pricing = %v/%v, want 3100/4650", eth.EntryPrice, eth.NotionalValue)
	}
	if eth.Leverage != 3 || eth.LeverageType != hedgefolio.CrossLeverage {
		t.Errorf("eth leverage = %v %v, want 3 cross", eth.Leverage, eth.LeverageType)
	}
	if eth.FundingRate != 0.0000125 {
		t.Errorf("eth.FundingRate = %v, want 0.0000125", eth.FundingRate)
	}
	// hourly × 24 × 365 × 100
	want := 0.0000125 * 24 * 365 * 100
	if math.Abs(eth.FundingRateAnnualized-want) > 1e-9 {
		t.Errorf("eth.FundingRateAnnualized = %v, want %v", eth.FundingRateAnnualized, want)
	}

	btc := positions[1]
	if btc.Side != hedgefolio.Long || btc.LeverageType != hedgefolio.IsolatedLeverage {
		t.Errorf("btc = %+v, want a LONG isolated position", btc)
	}
	if btc.UnrealizedPnl != -12.5 {
		t.Errorf("btc.UnrealizedPnl = %v, want -12.5", btc.UnrealizedPnl)
	}
}

func TestClient_PositionsEmptyBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["type"] == "metaAndAssetCtxs" {
			w.Write([]byte(metaFixture))
			return
		}
		w.Write([]byte(`{"assetPositions": []}`))
	}))
	defer srv.Close()

	positions, err := NewWithBase(srv.URL).Positions("0xabc")
	if err != nil {
		t.Fatalf("Positions() unexpected error = %v", err)
	}
	if len(positions) != 0 {
		t.Errorf("Positions() = %v, want empty", positions)
	}
}
