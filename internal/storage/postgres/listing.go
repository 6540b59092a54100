package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type ListingStore struct {
	db *sqlx.DB
}

func NewListingStore(db *sqlx.DB) *ListingStore {
	return &ListingStore{db: db}
}

// ListByUser returns every tracked listing of one user on one provider,
// including deleted ones so the reconciler can enforce terminal deletion.
func (s *ListingStore) ListByUser(ctx context.Context, userID int64, provider string) ([]domain.TrackedListing, error) {
	var listings []domain.TrackedListing
	query := `
		SELECT listing_id, provider, user_id, inventory_id, status, amount,
		       currency, expires_at, updated_at
		FROM tracked_listings
		WHERE user_id = $1 AND provider = $2`

	err := s.db.SelectContext(ctx, &listings, query, userID, provider)
	return listings, err
}

// UpdateFromRemote overwrites the local cache with the marketplace's
// authoritative status, amount and expiry. Deleted rows are excluded in SQL
// as a second line of defense behind the reconciler's own check.
func (s *ListingStore) UpdateFromRemote(ctx context.Context, provider, listingID string, remote *domain.RemoteListing) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE tracked_listings
		SET status = $3, amount = $4, currency = $5, expires_at = $6, updated_at = now()
		WHERE provider = $1 AND listing_id = $2 AND status <> 'DELETED'`,
		provider, listingID, remote.Status, remote.Amount, remote.Currency, remote.ExpiresAt,
	)
	return err
}

// MarkDeleted transitions a listing to its terminal DELETED state.
func (s *ListingStore) MarkDeleted(ctx context.Context, provider, listingID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE tracked_listings
		SET status = 'DELETED', updated_at = now()
		WHERE provider = $1 AND listing_id = $2 AND status <> 'DELETED'`,
		provider, listingID,
	)
	return err
}

// Insert creates the initial tracked row. Listing creation itself happens
// in the surrounding application; this exists for flows and tests that seed
// listings.
func (s *ListingStore) Insert(ctx context.Context, l *domain.TrackedListing) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO tracked_listings (
			listing_id, provider, user_id, inventory_id, status, amount, currency, expires_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (provider, listing_id) DO NOTHING`,
		l.ListingID, l.Provider, l.UserID, l.InventoryID, l.Status, l.Amount, l.Currency, l.ExpiresAt,
	)
	return err
}
