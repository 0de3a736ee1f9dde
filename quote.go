package invest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// QuoteProvider supplies the latest traded price for a symbol.
//
// Implementations may fail or time out; the execution engine maps every
// failure, including a non-positive price, to its fallback price.
type QuoteProvider interface {
	LatestPrice(ctx context.Context, symbol string) (Money, error)
}

// DefaultQuoteTimeout bounds how long a single quote lookup may block
// the run that triggered it.
const DefaultQuoteTimeout = 5 * time.Second

// HTTPQuotes fetches the latest traded price from a JSON-over-HTTP quote
// service.
type HTTPQuotes struct {
	// URL is the endpoint template, with one %s verb for the symbol.
	URL string
	// Path is the JSONPath expression locating the last traded price in
	// the response document.
	Path string
	// Currency denominates the returned prices.
	Currency string

	client *http.Client
	log    zerolog.Logger
}

// NewHTTPQuotes creates a quote provider for the given endpoint. The
// timeout applies per lookup; zero means DefaultQuoteTimeout.
func NewHTTPQuotes(urlTemplate, path, currency string, timeout time.Duration, log zerolog.Logger) *HTTPQuotes {
	if timeout <= 0 {
		timeout = DefaultQuoteTimeout
	}
	return &HTTPQuotes{
		URL:      urlTemplate,
		Path:     path,
		Currency: currency,
		client:   &http.Client{Timeout: timeout},
		log:      log.With().Str("component", "quotes").Logger(),
	}
}

// LatestPrice queries the quote service for the symbol's latest traded
// price. A slow service is cut off by the client timeout and reported
// as an error like any other failure.
func (q *HTTPQuotes) LatestPrice(ctx context.Context, symbol string) (Money, error) {
	addr := fmt.Sprintf(q.URL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return Money{}, fmt.Errorf("invalid quote request for %q: %w", symbol, err)
	}
	resp, err := q.client.Do(req)
	if err != nil {
		return Money{}, fmt.Errorf("quote request for %q failed: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Money{}, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return Money{}, fmt.Errorf("could not decode quote response for %q: %w", symbol, err)
	}

	jval, err := jsonpath.Get(q.Path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error extracting price for %q: %q %w", symbol, q.Path, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// 1 answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, err := asFloat(jval)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing price for %q at %q: %w", symbol, q.Path, err)
	}
	q.log.Debug().Str("symbol", symbol).Float64("price", val).Msg("quote fetched")
	return M(val, q.Currency), nil
}

// asFloat coerces the jsonpath result into a price. Some venues serve
// numbers as localized strings ("123,45").
func asFloat(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", jval)
	}
}
