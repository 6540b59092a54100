package stockx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_syncer/internal/domain"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{
		BaseURL:        baseURL,
		Timeout:        2 * time.Second,
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, logger)
}

func TestSearchProduct_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/catalog/search", r.URL.Path)
		assert.Equal(t, "DZ5485-612", r.URL.Query().Get("styleId"))
		w.Write([]byte(`{
			"count": 1,
			"products": [{
				"productId": "prod-1",
				"styleId": "DZ5485-612",
				"brand": "Jordan",
				"title": "Air Jordan 1 Retro High OG",
				"colorway": "Lucky Green"
			}]
		}`))
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).SearchProduct(context.Background(), "DZ5485-612")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "stockx", product.Provider)
	assert.Equal(t, "prod-1", product.ProviderProductID)
	assert.Equal(t, "DZ5485-612", product.SKU)
	assert.Equal(t, "dz5485612", product.NormalizedSKU)
	assert.Equal(t, "Jordan", product.Brand)
}

func TestSearchProduct_UnknownSKUIsAbsenceNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "products": []}`))
	}))
	defer srv.Close()

	product, err := newTestClient(srv.URL).SearchProduct(context.Background(), "NOPE-000")

	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestQuote_AllNullMarketData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"currencyCode": "GBP"}`))
	}))
	defer srv.Close()

	quote, err := newTestClient(srv.URL).Quote(context.Background(), "prod-1", "var-1", "GBP")

	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestQuote_PartialMarketData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GBP", r.URL.Query().Get("currencyCode"))
		w.Write([]byte(`{"currencyCode": "GBP", "lowestAskAmount": 189.99}`))
	}))
	defer srv.Close()

	quote, err := newTestClient(srv.URL).Quote(context.Background(), "prod-1", "var-1", "GBP")

	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.True(t, quote.LowestAsk.Equal(decimal.RequireFromString("189.99")))
	assert.Nil(t, quote.HighestBid)
	assert.Nil(t, quote.LastSale)
	assert.Equal(t, "GBP", quote.Currency)
}

func TestListings_StatusMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"listings": [
			{"listingId": "l1", "amount": 200, "currencyCode": "GBP", "status": "ACTIVE"},
			{"listingId": "l2", "amount": 180, "currencyCode": "GBP", "status": "COMPLETED"},
			{"listingId": "l3", "amount": 150, "currencyCode": "GBP", "status": "CANCELED"},
			{"listingId": "l4", "amount": 120, "currencyCode": "GBP", "status": "PAUSED"}
		]}`))
	}))
	defer srv.Close()

	listings, err := newTestClient(srv.URL).Listings(context.Background(), "key-123")

	require.NoError(t, err)
	require.Len(t, listings, 4)
	assert.Equal(t, domain.ListingActive, listings[0].Status)
	assert.Equal(t, domain.ListingSold, listings[1].Status)
	assert.Equal(t, domain.ListingDeleted, listings[2].Status)
	assert.Equal(t, domain.ListingInactive, listings[3].Status)
}

func TestVerifyConnection_RejectedKeyNotRetried(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).VerifyConnection(context.Background(), "bad-key")

	assert.ErrorIs(t, err, domain.ErrAuth)
	assert.Equal(t, 1, calls)
}

func TestVerifyConnection_EmptyKey(t *testing.T) {
	err := newTestClient("http://unreachable.invalid").VerifyConnection(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrAuth)
}

func TestGetJSON_RetriesRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"count": 0, "products": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchProduct(context.Background(), "DZ5485-612")

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetJSON_RateLimitExhaustsAttempts(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchProduct(context.Background(), "DZ5485-612")

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Equal(t, 2, calls)
}
