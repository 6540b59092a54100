package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"market_syncer/internal/domain"
)

// Resolver selects one authoritative market value per inventory item.
// Currency is a hard filter: an observation in another currency is never
// surfaced or converted, because a silently cross-currency number is worse
// than no number. Absence of data is a valid outcome (Source NONE), never
// an error; the caller falls back to acquisition cost, not to zero.
type Resolver struct {
	links     LinkStore
	prices    PriceStore
	inventory InventorySource
	logger    *slog.Logger
}

func NewResolver(links LinkStore, prices PriceStore, inventory InventorySource, logger *slog.Logger) *Resolver {
	return &Resolver{
		links:     links,
		prices:    prices,
		inventory: inventory,
		logger:    logger,
	}
}

// Resolve walks the item's links in provider order and returns the first
// usable observation, with the fallback chain lastSale → lowestAsk →
// highestBid applied in that fixed priority. The returned value is already
// scaled by the item quantity.
func (r *Resolver) Resolve(ctx context.Context, inventoryID int64, userCurrency string) (*domain.MarketValue, error) {
	if !domain.ValidCurrency(userCurrency) {
		return nil, fmt.Errorf("unknown currency %q", userCurrency)
	}

	item, err := r.inventory.Get(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("load inventory item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("inventory item %d not found", inventoryID)
	}

	links, err := r.links.GetByInventoryID(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	for _, link := range links {
		obs, err := r.prices.Latest(ctx, link.SKU, link.Provider, link.Size, userCurrency)
		if err != nil {
			return nil, fmt.Errorf("latest price: %w", err)
		}
		if obs == nil {
			continue
		}

		price := firstPrice(obs)
		if price == nil {
			continue
		}

		value := domain.NewMoney(*price, userCurrency).MulQuantity(item.Quantity)
		return &domain.MarketValue{
			Value:  &value,
			Source: domain.SourceMarketplace,
			AsOf:   obs.ObservedAt,
		}, nil
	}

	return &domain.MarketValue{Source: domain.SourceNone}, nil
}

// firstPrice applies the fixed fallback chain. The first non-null field
// wins outright; later fields are never averaged or blended in.
func firstPrice(obs *domain.PriceObservation) *decimal.Decimal {
	switch {
	case obs.LastSale != nil:
		return obs.LastSale
	case obs.LowestAsk != nil:
		return obs.LowestAsk
	case obs.HighestBid != nil:
		return obs.HighestBid
	}
	return nil
}
