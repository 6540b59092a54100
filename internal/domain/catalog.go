package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct is a marketplace's canonical product record.
type CatalogProduct struct {
	ID                int64     `db:"id"`
	Provider          string    `db:"provider"`
	ProviderProductID string    `db:"provider_product_id"`
	SKU               string    `db:"sku"`
	NormalizedSKU     string    `db:"normalized_sku"`
	Brand             string    `db:"brand"`
	Model             string    `db:"model"`
	Colorway          *string   `db:"colorway"`
	ImageURL          *string   `db:"image_url"`
	Category          *string   `db:"category"`
	Variants          []CatalogVariant
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// CatalogVariant is a size-specific sub-record of a catalog product.
type CatalogVariant struct {
	ID                int64  `db:"id"`
	ProductID         int64  `db:"product_id"`
	ProviderVariantID string `db:"provider_variant_id"`
	Size              string `db:"size"`
}

// PriceQuote is what the marketplace returns for one variant. All three
// price fields are optional; a quote with none of them carries no market
// data and is not worth persisting.
type PriceQuote struct {
	LowestAsk  *decimal.Decimal
	HighestBid *decimal.Decimal
	LastSale   *decimal.Decimal
	Currency   string
}

// Empty reports whether the quote carries no price fields at all.
func (q PriceQuote) Empty() bool {
	return q.LowestAsk == nil && q.HighestBid == nil && q.LastSale == nil
}

// PriceObservation is one timestamped price snapshot for a
// (sku, provider, size, currency) bucket. Rows are append-only: a newer
// snapshot is a new row, never an update.
type PriceObservation struct {
	ID         int64            `db:"id"`
	SKU        string           `db:"sku"`
	Provider   string           `db:"provider"`
	Size       string           `db:"size"`
	Currency   string           `db:"currency"`
	LowestAsk  *decimal.Decimal `db:"lowest_ask"`
	HighestBid *decimal.Decimal `db:"highest_bid"`
	LastSale   *decimal.Decimal `db:"last_sale"`
	ObservedAt time.Time        `db:"observed_at"`
}

// Granularity selects the rollup bucket width.
type Granularity string

const (
	GranularityDay   Granularity = "DAY"
	GranularityMonth Granularity = "MONTH"
)

// TruncUnit returns the postgres date_trunc field for the granularity.
func (g Granularity) TruncUnit() string {
	if g == GranularityMonth {
		return "month"
	}
	return "day"
}

// PriceRollup is an aggregated bucket of raw observations, recomputed from
// source rows on every rollup run.
type PriceRollup struct {
	SKU         string           `db:"sku"`
	Provider    string           `db:"provider"`
	Size        string           `db:"size"`
	Currency    string           `db:"currency"`
	Granularity Granularity      `db:"granularity"`
	BucketStart time.Time        `db:"bucket_start"`
	AvgLastSale *decimal.Decimal `db:"avg_last_sale"`
	MinAsk      *decimal.Decimal `db:"min_lowest_ask"`
	MaxBid      *decimal.Decimal `db:"max_highest_bid"`
	SampleCount int64            `db:"sample_count"`
	ComputedAt  time.Time        `db:"computed_at"`
}
