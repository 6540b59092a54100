package stockx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"market_syncer/internal/domain"
)

const (
	Provider     = "stockx"
	ProviderName = "StockX"
)

// Config holds StockX client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the StockX-style catalog, market-data and selling APIs.
// Catalog endpoints are unauthenticated; selling endpoints take the user's
// API key per call because one client serves jobs for many users.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("provider", Provider),
	}
}

// ID returns the provider identifier.
func (c *Client) ID() string {
	return Provider
}

// Name returns the human-readable provider name.
func (c *Client) Name() string {
	return ProviderName
}

// SearchProduct looks a product up by style code. Unknown SKUs return
// (nil, nil): absence is a negative result, not an error.
func (c *Client) SearchProduct(ctx context.Context, sku string) (*domain.CatalogProduct, error) {
	u := fmt.Sprintf("%s/v2/catalog/search?styleId=%s", c.baseURL, url.QueryEscape(sku))

	var resp searchResponse
	if err := c.getJSON(ctx, u, "", &resp); err != nil {
		return nil, err
	}

	if len(resp.Products) == 0 {
		return nil, nil
	}

	return c.transformProduct(resp.Products[0]), nil
}

// Variants returns the size variants of a product.
func (c *Client) Variants(ctx context.Context, productID string) ([]domain.CatalogVariant, error) {
	u := fmt.Sprintf("%s/v2/catalog/products/%s/variants", c.baseURL, url.PathEscape(productID))

	var raw []apiVariant
	if err := c.getJSON(ctx, u, "", &raw); err != nil {
		return nil, err
	}

	variants := make([]domain.CatalogVariant, 0, len(raw))
	for _, v := range raw {
		variants = append(variants, domain.CatalogVariant{
			ProviderVariantID: v.VariantID,
			Size:              v.VariantValue,
		})
	}
	return variants, nil
}

// Quote fetches market data for one variant in one currency. Variants with
// no asks, bids or sales return (nil, nil).
func (c *Client) Quote(ctx context.Context, productID, variantID, currency string) (*domain.PriceQuote, error) {
	u := fmt.Sprintf("%s/v2/catalog/products/%s/variants/%s/market-data?currencyCode=%s",
		c.baseURL, url.PathEscape(productID), url.PathEscape(variantID), url.QueryEscape(currency))

	var md apiMarketData
	if err := c.getJSON(ctx, u, "", &md); err != nil {
		return nil, err
	}

	quote := domain.PriceQuote{
		LowestAsk:  md.LowestAskAmount,
		HighestBid: md.HighestBidAmount,
		LastSale:   md.LastSaleAmount,
		Currency:   md.CurrencyCode,
	}
	if quote.Empty() {
		return nil, nil
	}
	if quote.Currency == "" {
		quote.Currency = currency
	}
	return &quote, nil
}

// Listings returns every listing (active and inactive) the marketplace
// knows for the account behind apiKey. The marketplace is the source of
// truth for listing state; this client never writes it back.
func (c *Client) Listings(ctx context.Context, apiKey string) ([]domain.RemoteListing, error) {
	u := fmt.Sprintf("%s/v2/selling/listings?state=all", c.baseURL)

	var resp listingsResponse
	if err := c.getJSON(ctx, u, apiKey, &resp); err != nil {
		return nil, err
	}

	listings := make([]domain.RemoteListing, 0, len(resp.Listings))
	for _, l := range resp.Listings {
		listings = append(listings, domain.RemoteListing{
			ID:        l.ListingID,
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Amount:    l.Amount,
			Currency:  l.CurrencyCode,
			Status:    mapListingStatus(l.Status),
			ExpiresAt: l.ExpiresAt,
		})
	}
	return listings, nil
}

// VerifyConnection checks that the user's credentials are accepted.
func (c *Client) VerifyConnection(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return domain.ErrAuth
	}
	u := fmt.Sprintf("%s/v2/selling/listings?pageSize=1", c.baseURL)

	var resp listingsResponse
	return c.getJSON(ctx, u, apiKey, &resp)
}

func (c *Client) getJSON(ctx context.Context, url, apiKey string, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, url, apiKey, out)
		if err == nil {
			return nil
		}
		// Auth rejections never succeed on retry.
		if errors.Is(err, domain.ErrAuth) {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, url, apiKey string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MarketSyncer/1.0")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrAuth)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable:
		return fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrRateLimited)
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transformProduct(p apiProduct) *domain.CatalogProduct {
	return &domain.CatalogProduct{
		Provider:          Provider,
		ProviderProductID: p.ProductID,
		SKU:               p.StyleID,
		NormalizedSKU:     domain.NormalizeSKU(p.StyleID),
		Brand:             p.Brand,
		Model:             p.Title,
		Colorway:          p.Colorway,
		ImageURL:          p.Media.ImageURL,
		Category:          p.Category,
	}
}

func mapListingStatus(s string) domain.ListingStatus {
	switch s {
	case "ACTIVE":
		return domain.ListingActive
	case "SOLD", "COMPLETED":
		return domain.ListingSold
	case "DELETED", "CANCELED":
		return domain.ListingDeleted
	default:
		return domain.ListingInactive
	}
}
