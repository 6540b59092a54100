package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"market_syncer/internal/domain"
)

// Ingestor pulls catalog and price data for a set of SKUs and normalizes it
// into catalog products and price observations. One SKU failing never
// aborts the batch; failures accumulate in the result's error list.
type Ingestor struct {
	api       MarketplaceAPI
	catalog   CatalogStore
	prices    PriceStore
	txManager TransactionManager
	logger    *slog.Logger

	// Pacing between remote calls is part of the contract: the marketplace
	// rate-limits per account, so the pipeline spaces its calls instead of
	// hammering and retrying.
	variantDelay time.Duration
	productDelay time.Duration
}

func NewIngestor(
	api MarketplaceAPI,
	catalog CatalogStore,
	prices PriceStore,
	txManager TransactionManager,
	logger *slog.Logger,
	variantDelay, productDelay time.Duration,
) *Ingestor {
	return &Ingestor{
		api:          api,
		catalog:      catalog,
		prices:       prices,
		txManager:    txManager,
		logger:       logger.With("provider", api.ID()),
		variantDelay: variantDelay,
		productDelay: productDelay,
	}
}

// Ingest processes each distinct SKU once per run: product lookup, catalog
// upsert, then one price observation per size variant in the given
// currency. Duplicate observations (same snapshot re-ingested) count as
// skipped, not errors.
func (ing *Ingestor) Ingest(ctx context.Context, skus []string, currency string) *domain.IngestResult {
	result := &domain.IngestResult{}
	seen := make(map[string]struct{}, len(skus))

	first := true
	for _, sku := range skus {
		norm := domain.NormalizeSKU(sku)
		if norm == "" {
			continue
		}
		if _, done := seen[norm]; done {
			continue
		}
		seen[norm] = struct{}{}

		if !first {
			time.Sleep(ing.productDelay)
		}
		first = false

		ing.ingestOne(ctx, sku, currency, result)
	}

	ing.logger.Info("ingest finished",
		"fetched", result.Fetched,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)

	return result
}

func (ing *Ingestor) ingestOne(ctx context.Context, sku, currency string, result *domain.IngestResult) {
	product, err := ing.api.SearchProduct(ctx, sku)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("search %s: %v", sku, err))
		return
	}
	if product == nil {
		// Unknown to the marketplace: a skip, not an error, and no retry
		// within this run.
		result.Skipped++
		ing.logger.Debug("sku not in catalog", "sku", sku)
		return
	}
	result.Fetched++

	variants, err := ing.api.Variants(ctx, product.ProviderProductID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("variants %s: %v", sku, err))
		return
	}

	err = ing.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		productID, err := ing.catalog.UpsertProduct(txCtx, product)
		if err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}
		return ing.catalog.UpsertVariants(txCtx, productID, variants)
	})
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("store %s: %v", sku, err))
		return
	}

	observedAt := time.Now().UTC()

	for i, variant := range variants {
		if i > 0 {
			time.Sleep(ing.variantDelay)
		}

		quote, err := ing.api.Quote(ctx, product.ProviderProductID, variant.ProviderVariantID, currency)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("quote %s %s: %v", sku, variant.Size, err))
			continue
		}
		if quote == nil {
			// No asks, bids or sales at all: don't insert an all-null row.
			result.Skipped++
			continue
		}

		inserted, err := ing.prices.Record(ctx, &domain.PriceObservation{
			SKU:        product.SKU,
			Provider:   product.Provider,
			Size:       variant.Size,
			Currency:   quote.Currency,
			LowestAsk:  quote.LowestAsk,
			HighestBid: quote.HighestBid,
			LastSale:   quote.LastSale,
			ObservedAt: observedAt,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %s %s: %v", sku, variant.Size, err))
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}
}
