package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"market_syncer/internal/domain"
)

// MarketplaceAPI is the external catalog/price/listings contract. Absence
// (unknown SKU, no market data) is reported as nil, never as an error.
type MarketplaceAPI interface {
	ID() string
	Name() string
	SearchProduct(ctx context.Context, sku string) (*domain.CatalogProduct, error)
	Variants(ctx context.Context, productID string) ([]domain.CatalogVariant, error)
	Quote(ctx context.Context, productID, variantID, currency string) (*domain.PriceQuote, error)
	Listings(ctx context.Context, apiKey string) ([]domain.RemoteListing, error)
	VerifyConnection(ctx context.Context, apiKey string) error
}

type CatalogStore interface {
	UpsertProduct(ctx context.Context, p *domain.CatalogProduct) (int64, error)
	UpsertVariants(ctx context.Context, productID int64, variants []domain.CatalogVariant) error
	GetByNormalizedSKU(ctx context.Context, provider, normalizedSKU string) (*domain.CatalogProduct, error)
}

type PriceStore interface {
	Record(ctx context.Context, obs *domain.PriceObservation) (bool, error)
	Latest(ctx context.Context, sku, provider, size, currency string) (*domain.PriceObservation, error)
}

type LinkStore interface {
	Upsert(ctx context.Context, link *domain.InventoryMarketLink) (int64, error)
	GetByInventoryID(ctx context.Context, inventoryID int64) ([]domain.InventoryMarketLink, error)
	ClearListingRef(ctx context.Context, provider, listingID string) error
}

type ListingStore interface {
	ListByUser(ctx context.Context, userID int64, provider string) ([]domain.TrackedListing, error)
	UpdateFromRemote(ctx context.Context, provider, listingID string, remote *domain.RemoteListing) error
	MarkDeleted(ctx context.Context, provider, listingID string) error
}

// InventorySource is the read-only inventory feed owned by the surrounding
// application.
type InventorySource interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.InventoryItem, error)
	Get(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error)
}

type CredentialsStore interface {
	Get(ctx context.Context, userID int64, provider string) (*domain.MarketCredentials, error)
	ListConnected(ctx context.Context, provider string) ([]int64, error)
}

type SyncStateStore interface {
	Get(ctx context.Context, userID int64, provider string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type RetentionStore interface {
	RollupObservations(ctx context.Context, granularity domain.Granularity) (int64, error)
	RollupWatermark(ctx context.Context) (*time.Time, error)
	PruneObservations(ctx context.Context, cutoff time.Time) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishSyncReport(ctx context.Context, report *domain.SyncReport) error
	PublishReconcileReport(ctx context.Context, report *domain.ReconcileReport) error
	Close() error
}

// CatalogIngestor, InventoryLinker and AggregateRefresher are the
// orchestrator's view of its pipeline steps.
type CatalogIngestor interface {
	Ingest(ctx context.Context, skus []string, currency string) *domain.IngestResult
}

type InventoryLinker interface {
	Link(ctx context.Context, item domain.InventoryItem, provider string) (*domain.LinkResult, error)
}

type AggregateRefresher interface {
	Refresh(ctx context.Context) (int64, error)
}
