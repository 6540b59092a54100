package stockx

import (
	"time"

	"github.com/shopspring/decimal"
)

// searchResponse is the catalog search envelope. An empty product list means
// the SKU is unknown to the marketplace, which the API reports as absence,
// not as an error.
type searchResponse struct {
	Count    int          `json:"count"`
	Products []apiProduct `json:"products"`
}

type apiProduct struct {
	ProductID string   `json:"productId"`
	StyleID   string   `json:"styleId"`
	Brand     string   `json:"brand"`
	Title     string   `json:"title"`
	Colorway  *string  `json:"colorway"`
	Category  *string  `json:"productCategory"`
	Media     apiMedia `json:"media"`
}

type apiMedia struct {
	ImageURL *string `json:"imageUrl"`
}

type apiVariant struct {
	VariantID    string `json:"variantId"`
	ProductID    string `json:"productId"`
	VariantValue string `json:"variantValue"` // size in the account's size chart
}

// apiMarketData carries the three optional price fields. All-null market
// data is a valid response for illiquid variants.
type apiMarketData struct {
	CurrencyCode     string           `json:"currencyCode"`
	LowestAskAmount  *decimal.Decimal `json:"lowestAskAmount"`
	HighestBidAmount *decimal.Decimal `json:"highestBidAmount"`
	LastSaleAmount   *decimal.Decimal `json:"lastSaleAmount"`
}

type listingsResponse struct {
	Listings []apiListing `json:"listings"`
}

type apiListing struct {
	ListingID    string          `json:"listingId"`
	ProductID    string          `json:"productId"`
	VariantID    string          `json:"variantId"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       string          `json:"status"`
	ExpiresAt    *time.Time      `json:"expiresAt"`
}
