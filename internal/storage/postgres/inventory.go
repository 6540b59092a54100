package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

// InventoryStore reads the inventory feed owned by the surrounding
// application. This subsystem never writes inventory rows.
type InventoryStore struct {
	db *sqlx.DB
}

func NewInventoryStore(db *sqlx.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) ListByUser(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	query := `
		SELECT id, user_id, sku, size, quantity, purchase_price, purchase_currency
		FROM inventory_items
		WHERE user_id = $1
		ORDER BY id`

	err := s.db.SelectContext(ctx, &items, query, userID)
	return items, err
}

func (s *InventoryStore) Get(ctx context.Context, inventoryID int64) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	query := `
		SELECT id, user_id, sku, size, quantity, purchase_price, purchase_currency
		FROM inventory_items
		WHERE id = $1`

	err := s.db.GetContext(ctx, &item, query, inventoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CredentialsStore reads marketplace connections.
type CredentialsStore struct {
	db *sqlx.DB
}

func NewCredentialsStore(db *sqlx.DB) *CredentialsStore {
	return &CredentialsStore{db: db}
}

// Get returns the user's credentials for one provider, or nil when the user
// never connected that marketplace.
func (s *CredentialsStore) Get(ctx context.Context, userID int64, provider string) (*domain.MarketCredentials, error) {
	var creds domain.MarketCredentials
	query := `
		SELECT user_id, provider, api_key, currency, connected
		FROM marketplace_credentials
		WHERE user_id = $1 AND provider = $2`

	err := s.db.GetContext(ctx, &creds, query, userID, provider)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// ListConnected returns the ids of every user with an active connection to
// the provider, for the scheduler to iterate.
func (s *CredentialsStore) ListConnected(ctx context.Context, provider string) ([]int64, error) {
	var ids []int64
	query := `
		SELECT user_id FROM marketplace_credentials
		WHERE provider = $1 AND connected
		ORDER BY user_id`

	err := s.db.SelectContext(ctx, &ids, query, provider)
	return ids, err
}
