package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type RetentionStore struct {
	db *sqlx.DB
}

func NewRetentionStore(db *sqlx.DB) *RetentionStore {
	return &RetentionStore{db: db}
}

// RollupObservations recomputes the aggregates of every bucket from the raw
// rows and upserts them. Recompute-then-upsert keeps the operation
// idempotent: re-running a period never double counts.
func (s *RetentionStore) RollupObservations(ctx context.Context, granularity domain.Granularity) (int64, error) {
	query := `
		INSERT INTO price_rollups (
			sku, provider, size, currency, granularity, bucket_start,
			avg_last_sale, min_lowest_ask, max_highest_bid, sample_count, computed_at
		)
		SELECT sku, provider, size, currency, $1, date_trunc($2, observed_at),
		       avg(last_sale), min(lowest_ask), max(highest_bid), count(*), now()
		FROM price_observations
		GROUP BY sku, provider, size, currency, date_trunc($2, observed_at)
		ON CONFLICT (sku, provider, size, currency, granularity, bucket_start) DO UPDATE SET
			avg_last_sale = EXCLUDED.avg_last_sale,
			min_lowest_ask = EXCLUDED.min_lowest_ask,
			max_highest_bid = EXCLUDED.max_highest_bid,
			sample_count = EXCLUDED.sample_count,
			computed_at = EXCLUDED.computed_at`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, granularity, granularity.TruncUnit())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// RollupWatermark returns the newest DAY bucket that has been rolled up, or
// nil when no daily rollup has ever run.
func (s *RetentionStore) RollupWatermark(ctx context.Context) (*time.Time, error) {
	query := `
		SELECT max(bucket_start) FROM price_rollups WHERE granularity = $1`

	// max() over zero rows yields NULL, so scan through NullTime.
	var watermark sql.NullTime
	err := s.db.GetContext(ctx, &watermark, query, domain.GranularityDay)
	if err != nil {
		return nil, err
	}
	if !watermark.Valid {
		return nil, nil
	}
	return &watermark.Time, nil
}

// PruneObservations deletes raw rows older than cutoff, but only rows whose
// daily bucket has been rolled up. Buckets that were never aggregated keep
// their raw rows even past the window.
func (s *RetentionStore) PruneObservations(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM price_observations o
		WHERE o.observed_at < $1
		  AND EXISTS (
			SELECT 1 FROM price_rollups r
			WHERE r.granularity = $2
			  AND r.sku = o.sku
			  AND r.provider = o.provider
			  AND r.size = o.size
			  AND r.currency = o.currency
			  AND r.bucket_start = date_trunc('day', o.observed_at)
			  AND r.computed_at >= o.observed_at
		  )`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cutoff, domain.GranularityDay)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
