package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"market_syncer/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, userID int64, provider string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT user_id, provider, last_synced_at, total_synced
		FROM sync_state
		WHERE user_id = $1 AND provider = $2`

	err := s.db.GetContext(ctx, &state, query, userID, provider)
	if errors.Is(err, sql.ErrNoRows) {
		// First sync for this user/provider pair.
		return &domain.SyncState{
			UserID:   userID,
			Provider: provider,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (user_id, provider, last_synced_at, total_synced)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, provider) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			total_synced = EXCLUDED.total_synced`

	_, err := s.db.ExecContext(ctx, query,
		state.UserID,
		state.Provider,
		state.LastSyncedAt,
		state.TotalSynced,
	)
	return err
}
