package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the finite status set of a tracked listing.
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingInactive ListingStatus = "INACTIVE"
	ListingSold     ListingStatus = "SOLD"
	// ListingDeleted is terminal: once a listing is marked deleted it is
	// never resurrected, even if the same id reappears remotely.
	ListingDeleted ListingStatus = "DELETED"
)

// TrackedListing is a locally cached record of a sell listing placed on a
// marketplace. The marketplace is authoritative; the reconciler keeps this
// cache in sync.
type TrackedListing struct {
	ListingID   string          `db:"listing_id"`
	Provider    string          `db:"provider"`
	UserID      int64           `db:"user_id"`
	InventoryID int64           `db:"inventory_id"`
	Status      ListingStatus   `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	ExpiresAt   *time.Time      `db:"expires_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// RemoteListing is a listing as reported by the marketplace listings API.
type RemoteListing struct {
	ID        string
	ProductID string
	VariantID string
	Amount    decimal.Decimal
	Currency  string
	Status    ListingStatus
	ExpiresAt *time.Time
}
