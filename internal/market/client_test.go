package market

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const chartFixture = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "RELIANCE.NS", "currency": "INR"},
      "indicators": {"quote": [{"close": [2800.0, 2850.5, null, 2900.0, 2880.25]}]}
    }],
    "error": null
  }
}`

func TestFetch_ParsesChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/RELIANCE.NS" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("range") != "1mo" {
			t.Errorf("range = %q, want 1mo", r.URL.Query().Get("range"))
		}
		_, _ = w.Write([]byte(chartFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	q, err := c.Fetch(context.Background(), "reliance.ns")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if q.Symbol != "RELIANCE.NS" || q.Currency != "INR" {
		t.Errorf("meta = %s/%s, want RELIANCE.NS/INR", q.Symbol, q.Currency)
	}
	if q.Price != 2880.25 {
		t.Errorf("Price = %v, want 2880.25", q.Price)
	}
	if q.PrevClose != 2900.0 {
		t.Errorf("PrevClose = %v, want 2900.0", q.PrevClose)
	}
	wantChange := (2880.25 - 2900.0) / 2900.0 * 100
	if math.Abs(q.ChangePct-wantChange) > 1e-9 {
		t.Errorf("ChangePct = %v, want %v", q.ChangePct, wantChange)
	}
	if q.RangeLow != 2800.0 || q.RangeHigh != 2900.0 {
		t.Errorf("range = %v-%v, want 2800-2900", q.RangeLow, q.RangeHigh)
	}
	if len(q.Closes) != 4 { // null dropped
		t.Errorf("len(Closes) = %d, want 4", len(q.Closes))
	}
}

func TestFetch_CachesBySymbol(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(chartFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for i := 0; i < 3; i++ {
		if _, err := c.Fetch(context.Background(), "RELIANCE.NS"); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1 (cached)", got)
	}
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, "", ErrNoData},
		{"rate limited", http.StatusTooManyRequests, "", ErrRateLimited},
		{"bad request", http.StatusBadRequest, "", ErrUnavailable},
		{"server error", http.StatusInternalServerError, "", ErrUnavailable},
		{"chart error", http.StatusOK, `{"chart":{"result":null,"error":{"description":"No data found"}}}`, ErrNoData},
		{"all null closes", http.StatusOK, `{"chart":{"result":[{"meta":{},"indicators":{"quote":[{"close":[null,null]}]}}]}}`, ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			if _, err := c.Fetch(context.Background(), "X"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Fetch error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetch_EmptySymbol(t *testing.T) {
	c := NewClient("http://unused.invalid")
	if _, err := c.Fetch(context.Background(), "  "); !errors.Is(err, ErrNoData) {
		t.Errorf("Fetch error = %v, want ErrNoData", err)
	}
}

func TestFetch_NetworkFailureUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background(), "X"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Fetch error = %v, want ErrUnavailable", err)
	}
}
