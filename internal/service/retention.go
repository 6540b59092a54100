package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"market_syncer/internal/domain"
)

// RetentionManager rolls raw price history up into daily and monthly
// aggregates and prunes raw rows past the retention window. Rollup before
// prune is a hard ordering invariant: raw rows that were never aggregated
// are kept, whatever their age.
type RetentionManager struct {
	store  RetentionStore
	logger *slog.Logger
	window time.Duration
}

func NewRetentionManager(store RetentionStore, logger *slog.Logger, window time.Duration) *RetentionManager {
	return &RetentionManager{
		store:  store,
		logger: logger,
		window: window,
	}
}

// Rollup recomputes every bucket of the given granularity from the raw
// rows. Re-running an already-aggregated period is a no-op in effect: the
// aggregate is recomputed from source, never incremented.
func (m *RetentionManager) Rollup(ctx context.Context, granularity domain.Granularity) (int64, error) {
	written, err := m.store.RollupObservations(ctx, granularity)
	if err != nil {
		return 0, fmt.Errorf("rollup %s: %w", granularity, err)
	}

	m.logger.Info("rollup finished", "granularity", granularity, "rows_written", written)
	return written, nil
}

// Refresh runs the daily and monthly rollups back to back; this is the
// orchestrator's REFRESH_AGGREGATES step.
func (m *RetentionManager) Refresh(ctx context.Context) (int64, error) {
	day, err := m.Rollup(ctx, domain.GranularityDay)
	if err != nil {
		return 0, err
	}
	month, err := m.Rollup(ctx, domain.GranularityMonth)
	if err != nil {
		return day, err
	}
	return day + month, nil
}

// Prune deletes raw observations older than the retention window.
// Precondition: the daily rollup watermark must reach the cutoff's bucket,
// otherwise the prune is rejected with ErrRollupRequired. The store
// additionally refuses per-row to delete anything whose bucket was never
// aggregated, so a stale watermark can only under-delete.
func (m *RetentionManager) Prune(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-m.window)

	watermark, err := m.store.RollupWatermark(ctx)
	if err != nil {
		return 0, fmt.Errorf("rollup watermark: %w", err)
	}
	required := cutoff.Truncate(24 * time.Hour)
	if watermark == nil || watermark.Before(required) {
		return 0, domain.ErrRollupRequired
	}

	deleted, err := m.store.PruneObservations(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune observations: %w", err)
	}

	m.logger.Info("prune finished",
		"cutoff", cutoff,
		"rows_deleted", deleted,
	)
	return deleted, nil
}
