// Package market fetches ticker quotes and recent price history from the
// Yahoo Finance chart API.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	cacheTTL       = 5 * time.Minute
)

var (
	// ErrUnavailable indicates the market data service could not be reached.
	ErrUnavailable = errors.New("market: service unavailable")
	// ErrNoData indicates the symbol returned no usable price history.
	ErrNoData = errors.New("market: no data for symbol")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("market: rate limited")
)

// Quote is one month of daily history condensed for display.
type Quote struct {
	Symbol    string
	Currency  string
	Price     float64
	PrevClose float64
	ChangePct float64 // percent change vs previous close
	RangeLow  float64 // one-month low
	RangeHigh float64 // one-month high
	Closes    []float64
	FetchedAt time.Time
}

// Client fetches quotes, caching each symbol for a short TTL so repeated
// lookups in one session don't hammer the API.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]Quote
}

// NewClient creates a market data client. An empty baseURL selects the
// public Yahoo endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		cache:   make(map[string]Quote),
	}
}

// chartResponse mirrors the fields we read from the chart endpoint.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol   string `json:"symbol"`
				Currency string `json:"currency"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch returns a quote for the symbol, from cache when fresh.
// Failures surface as errors; they never panic or abort the caller.
func (c *Client) Fetch(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}, fmt.Errorf("%w: empty symbol", ErrNoData)
	}

	c.mu.Lock()
	if q, ok := c.cache[symbol]; ok && time.Since(q.FetchedAt) < cacheTTL {
		c.mu.Unlock()
		return q, nil
	}
	c.mu.Unlock()

	q, err := c.fetch(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}

	c.mu.Lock()
	c.cache[symbol] = q
	c.mu.Unlock()
	return q, nil
}

func (c *Client) fetch(ctx context.Context, symbol string) (Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=1mo&interval=1d", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("market: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/paisapaglu/paisa/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Quote{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	case resp.StatusCode == http.StatusTooManyRequests:
		return Quote{}, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return Quote{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Quote{}, fmt.Errorf("market: reading response: %w", err)
	}

	var parsed chartResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Quote{}, fmt.Errorf("market: parsing response: %w", err)
	}

	if parsed.Chart.Error != nil {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoData, parsed.Chart.Error.Description)
	}
	if len(parsed.Chart.Result) == 0 || len(parsed.Chart.Result[0].Indicators.Quote) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}

	result := parsed.Chart.Result[0]
	closes := compactCloses(result.Indicators.Quote[0].Close)
	if len(closes) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}

	q := Quote{
		Symbol:    result.Meta.Symbol,
		Currency:  result.Meta.Currency,
		Closes:    closes,
		Price:     closes[len(closes)-1],
		FetchedAt: time.Now(),
	}
	if q.Symbol == "" {
		q.Symbol = symbol
	}
	if len(closes) > 1 {
		q.PrevClose = closes[len(closes)-2]
		if q.PrevClose != 0 {
			q.ChangePct = (q.Price - q.PrevClose) / q.PrevClose * 100
		}
	}

	q.RangeLow, q.RangeHigh = closes[0], closes[0]
	for _, v := range closes {
		if v < q.RangeLow {
			q.RangeLow = v
		}
		if v > q.RangeHigh {
			q.RangeHigh = v
		}
	}
	return q, nil
}

// compactCloses drops the nulls Yahoo inserts for holidays and halts.
func compactCloses(raw []*float64) []float64 {
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
