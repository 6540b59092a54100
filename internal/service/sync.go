package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"market_syncer/internal/domain"
)

// SyncService runs the end-to-end pipeline for one user as a strictly
// ordered sequence of steps. The report accumulator is threaded through
// every step and always handed back, partial on failure: callers never lose
// the counts gathered before the step that died.
type SyncService struct {
	api       MarketplaceAPI
	inventory InventorySource
	creds     CredentialsStore
	ingestor  CatalogIngestor
	linker    InventoryLinker
	refresher AggregateRefresher
	syncState SyncStateStore
	publisher Publisher
	logger    *slog.Logger

	defaultCurrency string
}

func NewSyncService(
	api MarketplaceAPI,
	inventory InventorySource,
	creds CredentialsStore,
	ingestor CatalogIngestor,
	linker InventoryLinker,
	refresher AggregateRefresher,
	syncState SyncStateStore,
	publisher Publisher,
	logger *slog.Logger,
	defaultCurrency string,
) *SyncService {
	return &SyncService{
		api:             api,
		inventory:       inventory,
		creds:           creds,
		ingestor:        ingestor,
		linker:          linker,
		refresher:       refresher,
		syncState:       syncState,
		publisher:       publisher,
		logger:          logger.With("provider", api.ID()),
		defaultCurrency: defaultCurrency,
	}
}

// Sync drives VERIFY_CONNECTION → FETCH_INVENTORY → SYNC_CATALOG_PRICES →
// LINK_INVENTORY → REFRESH_AGGREGATES → COMPLETED. Per-item failures inside
// a step are absorbed into the report; only connection/auth errors and zero
// usable inventory are fatal. Cancellation is honored at step boundaries so
// a step's item loop never stops half way through a row pair.
func (s *SyncService) Sync(ctx context.Context, userID int64) (*domain.SyncReport, error) {
	report := &domain.SyncReport{
		RunID:     uuid.New(),
		UserID:    userID,
		Provider:  s.api.ID(),
		State:     domain.StepVerifyConnection,
		StartedAt: time.Now().UTC(),
	}
	defer func() { report.FinishedAt = time.Now().UTC() }()

	s.logger.Info("starting sync", "run_id", report.RunID, "user_id", userID)

	// VERIFY_CONNECTION
	creds, err := s.creds.Get(ctx, userID, report.Provider)
	if err != nil {
		report.Fail(err)
		return report, fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil || !creds.Connected || creds.APIKey == "" {
		report.Fail(domain.ErrAuth)
		return report, domain.ErrAuth
	}
	if err := s.api.VerifyConnection(ctx, creds.APIKey); err != nil {
		report.Fail(err)
		return report, fmt.Errorf("verify connection: %w", err)
	}

	// FETCH_INVENTORY
	if err := s.advance(ctx, report, domain.StepFetchInventory); err != nil {
		return report, err
	}
	items, err := s.inventory.ListByUser(ctx, userID)
	if err != nil {
		report.Fail(err)
		return report, fmt.Errorf("fetch inventory: %w", err)
	}
	if len(items) == 0 {
		report.Fail(domain.ErrNoInventory)
		return report, domain.ErrNoInventory
	}
	report.InventoryCount = len(items)

	// SYNC_CATALOG_PRICES
	if err := s.advance(ctx, report, domain.StepSyncCatalogPrices); err != nil {
		return report, err
	}
	currency := creds.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	skus := make([]string, 0, len(items))
	for _, item := range items {
		skus = append(skus, item.SKU)
	}
	report.Ingest = *s.ingestor.Ingest(ctx, skus, currency)

	// LINK_INVENTORY
	if err := s.advance(ctx, report, domain.StepLinkInventory); err != nil {
		return report, err
	}
	for _, item := range items {
		res, err := s.linker.Link(ctx, item, report.Provider)
		if err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("link inventory %d: %v", item.ID, err))
			continue
		}
		if res.Matched {
			report.Linked++
		} else {
			// Negative results are recorded, never inferred from absence.
			report.Unmatched = append(report.Unmatched, item.SKU)
			s.logger.Info("inventory item unmatched",
				"inventory_id", item.ID,
				"sku", item.SKU,
				"reason", res.Reason,
			)
		}
	}

	// REFRESH_AGGREGATES
	if err := s.advance(ctx, report, domain.StepRefreshAggregates); err != nil {
		return report, err
	}
	written, err := s.refresher.Refresh(ctx)
	if err != nil {
		report.Fail(err)
		return report, fmt.Errorf("refresh aggregates: %w", err)
	}
	report.RollupsWritten = written

	report.State = domain.StepCompleted

	if err := s.updateSyncState(ctx, report); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("update sync state: %v", err))
		s.logger.Warn("update sync state failed", "error", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSyncReport(ctx, report); err != nil {
			s.logger.Warn("publish sync report failed", "error", err)
		}
	}

	s.logger.Info("sync completed",
		"run_id", report.RunID,
		"inventory", report.InventoryCount,
		"ingested", report.Ingest.Inserted,
		"linked", report.Linked,
		"unmatched", len(report.Unmatched),
		"rollups", report.RollupsWritten,
		"errors", len(report.Errors)+len(report.Ingest.Errors),
	)

	return report, nil
}

// advance moves the report to the next step, honoring cancellation at the
// boundary only: an in-flight step always ran to completion before this.
func (s *SyncService) advance(ctx context.Context, report *domain.SyncReport, step domain.SyncStep) error {
	if err := ctx.Err(); err != nil {
		report.Fail(err)
		return err
	}
	report.State = step
	return nil
}

func (s *SyncService) updateSyncState(ctx context.Context, report *domain.SyncReport) error {
	state, err := s.syncState.Get(ctx, report.UserID, report.Provider)
	if err != nil {
		return err
	}

	state.LastSyncedAt = time.Now().UTC()
	state.TotalSynced += int64(report.Ingest.Inserted)

	return s.syncState.Update(ctx, state)
}
