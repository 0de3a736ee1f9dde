package invest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPQuotes_LatestPrice(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("isin"))
		w.Write([]byte(`{"last": 123.45, "bid": 123.40}`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 0, zerolog.Nop())

	price, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.True(t, price.Equal(M(123.45, "USD")), "got %s", price)
}

func TestHTTPQuotes_LatestPriceLocalizedString(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"last": "123,45"}`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "EUR", 0, zerolog.Nop())

	price, err := quotes.LatestPrice(context.Background(), "SAP")
	require.NoError(t, err)
	assert.True(t, price.Equal(M(123.45, "EUR")), "got %s", price)
}

func TestHTTPQuotes_LatestPriceHTTPError(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 0, zerolog.Nop())

	_, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.Error(t, err)
}

func TestHTTPQuotes_LatestPriceBadDocument(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 0, zerolog.Nop())

	_, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.Error(t, err)
}

func TestHTTPQuotes_LatestPriceMissingField(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bid": 1.0}`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 0, zerolog.Nop())

	_, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.Error(t, err)
}

func TestHTTPQuotes_LatestPriceNotANumber(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"last": {"nested": true}}`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 0, zerolog.Nop())

	_, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.Error(t, err)
}

func TestHTTPQuotes_LatestPriceTimeout(t *testing.T) {
	srv := quoteServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"last": 1.0}`))
	})
	quotes := NewHTTPQuotes(srv.URL+"?isin=%s", "$.last", "USD", 20*time.Millisecond, zerolog.Nop())

	_, err := quotes.LatestPrice(context.Background(), "AAPL")
	require.Error(t, err)
}
