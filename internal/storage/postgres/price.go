package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type PriceStore struct {
	db *sqlx.DB
}

func NewPriceStore(db *sqlx.DB) *PriceStore {
	return &PriceStore{db: db}
}

// Record appends one observation. Rows are append-only and unique on
// (sku, provider, size, currency, observed_at); re-ingesting the same
// snapshot is a no-op success, reported as inserted=false.
func (s *PriceStore) Record(ctx context.Context, obs *domain.PriceObservation) (bool, error) {
	query := `
		INSERT INTO price_observations (
			sku, provider, size, currency, lowest_ask, highest_bid, last_sale, observed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (sku, provider, size, currency, observed_at) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		obs.SKU,
		obs.Provider,
		obs.Size,
		obs.Currency,
		obs.LowestAsk,
		obs.HighestBid,
		obs.LastSale,
		obs.ObservedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Latest returns the newest observation of a bucket, or nil when the bucket
// is empty. Equal observed_at timestamps are broken by insertion order, so
// a same-instant re-ingestion resolves to the last writer.
func (s *PriceStore) Latest(ctx context.Context, sku, provider, size, currency string) (*domain.PriceObservation, error) {
	var obs domain.PriceObservation
	query := `
		SELECT id, sku, provider, size, currency, lowest_ask, highest_bid, last_sale, observed_at
		FROM price_observations
		WHERE sku = $1 AND provider = $2 AND size = $3 AND currency = $4
		ORDER BY observed_at DESC, id DESC
		LIMIT 1`

	err := s.db.GetContext(ctx, &obs, query, sku, provider, size, currency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &obs, nil
}
