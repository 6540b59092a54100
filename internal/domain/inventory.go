package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one owned item from the surrounding application's
// read-only inventory feed.
type InventoryItem struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	SKU              string          `db:"sku"`
	Size             string          `db:"size"`
	Quantity         int             `db:"quantity"`
	PurchasePrice    decimal.Decimal `db:"purchase_price"`
	PurchaseCurrency string          `db:"purchase_currency"`
}

const LinkStatusActive = "ACTIVE"

// InventoryMarketLink associates an owned inventory item with a catalog
// variant on one provider. At most one link exists per (inventory, provider).
type InventoryMarketLink struct {
	ID                int64     `db:"id"`
	InventoryID       int64     `db:"inventory_id"`
	Provider          string    `db:"provider"`
	ProviderProductID string    `db:"provider_product_id"`
	ProviderVariantID string    `db:"provider_variant_id"`
	SKU               string    `db:"sku"`
	Size              string    `db:"size"`
	ListingID         *string   `db:"listing_id"`
	Status            string    `db:"status"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// LinkResult is the outcome of a link attempt. Matched=false is a negative
// result, not an error: the caller records it and moves on.
type LinkResult struct {
	Matched bool
	Link    *InventoryMarketLink
	Reason  string
}

// MarketCredentials is a user's connection to one marketplace. Currency is
// the marketplace-account currency used when ingesting quotes.
type MarketCredentials struct {
	UserID    int64  `db:"user_id"`
	Provider  string `db:"provider"`
	APIKey    string `db:"api_key"`
	Currency  string `db:"currency"`
	Connected bool   `db:"connected"`
}
