package service

import (
	"context"
	"fmt"
	"log/slog"

	"market_syncer/internal/domain"
)

// Linker matches owned inventory items to catalog variants by normalized
// SKU and exact size, and maintains the link rows. Matching is exact only:
// a wrong link silently corrupts every downstream valuation, so no fuzzy
// fallback exists. Size arrives in the caller's size system; any conversion
// happened before this call.
type Linker struct {
	catalog CatalogStore
	links   LinkStore
	logger  *slog.Logger
}

func NewLinker(catalog CatalogStore, links LinkStore, logger *slog.Logger) *Linker {
	return &Linker{
		catalog: catalog,
		links:   links,
		logger:  logger,
	}
}

// Link upserts the (inventory, provider) link when a catalog match exists.
// No match is a negative result for the caller to record, never a
// fabricated link.
func (l *Linker) Link(ctx context.Context, item domain.InventoryItem, provider string) (*domain.LinkResult, error) {
	norm := domain.NormalizeSKU(item.SKU)

	product, err := l.catalog.GetByNormalizedSKU(ctx, provider, norm)
	if err != nil {
		return nil, fmt.Errorf("lookup catalog product: %w", err)
	}
	if product == nil {
		return &domain.LinkResult{
			Matched: false,
			Reason:  fmt.Sprintf("no catalog product for sku %q", item.SKU),
		}, nil
	}

	var variant *domain.CatalogVariant
	for i := range product.Variants {
		if product.Variants[i].Size == item.Size {
			variant = &product.Variants[i]
			break
		}
	}
	if variant == nil {
		return &domain.LinkResult{
			Matched: false,
			Reason:  fmt.Sprintf("no variant for size %q of sku %q", item.Size, item.SKU),
		}, nil
	}

	link := &domain.InventoryMarketLink{
		InventoryID:       item.ID,
		Provider:          provider,
		ProviderProductID: product.ProviderProductID,
		ProviderVariantID: variant.ProviderVariantID,
		SKU:               product.SKU,
		Size:              variant.Size,
		Status:            domain.LinkStatusActive,
	}

	id, err := l.links.Upsert(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("upsert link: %w", err)
	}
	link.ID = id

	l.logger.Debug("linked inventory item",
		"inventory_id", item.ID,
		"sku", item.SKU,
		"size", item.Size,
		"provider", provider,
	)

	return &domain.LinkResult{Matched: true, Link: link}, nil
}
