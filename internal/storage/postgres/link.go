package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type LinkStore struct {
	db *sqlx.DB
}

func NewLinkStore(db *sqlx.DB) *LinkStore {
	return &LinkStore{db: db}
}

// Upsert inserts or refreshes the link for (inventory_id, provider). The
// unique constraint is the concurrency control: concurrent writers converge
// on one row instead of duplicating it.
func (s *LinkStore) Upsert(ctx context.Context, link *domain.InventoryMarketLink) (int64, error) {
	query := `
		INSERT INTO inventory_market_links (
			inventory_id, provider, provider_product_id, provider_variant_id,
			sku, size, status, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, now()
		)
		ON CONFLICT (inventory_id, provider) DO UPDATE SET
			provider_product_id = EXCLUDED.provider_product_id,
			provider_variant_id = EXCLUDED.provider_variant_id,
			sku = EXCLUDED.sku,
			size = EXCLUDED.size,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		link.InventoryID,
		link.Provider,
		link.ProviderProductID,
		link.ProviderVariantID,
		link.SKU,
		link.Size,
		link.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByInventoryID returns all provider links of one inventory item.
func (s *LinkStore) GetByInventoryID(ctx context.Context, inventoryID int64) ([]domain.InventoryMarketLink, error) {
	var links []domain.InventoryMarketLink
	query := `
		SELECT id, inventory_id, provider, provider_product_id, provider_variant_id,
		       sku, size, listing_id, status, updated_at
		FROM inventory_market_links
		WHERE inventory_id = $1
		ORDER BY provider`

	err := s.db.SelectContext(ctx, &links, query, inventoryID)
	return links, err
}

// ClearListingRef nulls the back-reference from any link pointing at a
// listing id. Called in the same transaction that marks the listing
// deleted, so an item never points at a listing that no longer exists.
func (s *LinkStore) ClearListingRef(ctx context.Context, provider, listingID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE inventory_market_links SET listing_id = NULL, updated_at = now()
		 WHERE provider = $1 AND listing_id = $2`,
		provider, listingID,
	)
	return err
}
