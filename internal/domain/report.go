package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncStep names a pipeline state. The orchestrator advances through the
// steps in order and stops at StepFailed on an unrecoverable error.
type SyncStep string

const (
	StepVerifyConnection  SyncStep = "VERIFY_CONNECTION"
	StepFetchInventory    SyncStep = "FETCH_INVENTORY"
	StepSyncCatalogPrices SyncStep = "SYNC_CATALOG_PRICES"
	StepLinkInventory     SyncStep = "LINK_INVENTORY"
	StepRefreshAggregates SyncStep = "REFRESH_AGGREGATES"
	StepCompleted         SyncStep = "COMPLETED"
	StepFailed            SyncStep = "FAILED"
)

// IngestResult accumulates counts for one catalog/price ingestion batch.
// Per-item failures land in Errors; they never abort the batch.
type IngestResult struct {
	Fetched  int      `json:"fetched"`
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// SyncReport is the per-run accumulator threaded through every orchestrator
// step. It is always returned to the caller, partial on failure, so counts
// gathered before a fatal error are never lost.
type SyncReport struct {
	RunID          uuid.UUID    `json:"run_id"`
	UserID         int64        `json:"user_id"`
	Provider       string       `json:"provider"`
	State          SyncStep     `json:"state"`
	InventoryCount int          `json:"inventory_count"`
	Ingest         IngestResult `json:"ingest"`
	Linked         int          `json:"linked"`
	Unmatched      []string     `json:"unmatched,omitempty"`
	RollupsWritten int64        `json:"rollups_written"`
	Errors         []string     `json:"errors,omitempty"`
	StartedAt      time.Time    `json:"started_at"`
	FinishedAt     time.Time    `json:"finished_at"`
}

// Fail records a job-level failure at the current step.
func (r *SyncReport) Fail(err error) {
	r.State = StepFailed
	r.Errors = append(r.Errors, err.Error())
}

// ReconcileReport accumulates counts for one reconcile run.
type ReconcileReport struct {
	UserID    int64    `json:"user_id"`
	Provider  string   `json:"provider"`
	Validated int      `json:"validated"`
	Updated   int      `json:"updated"`
	Deleted   int      `json:"deleted"`
	Orphaned  int      `json:"orphaned"`
	Errors    []string `json:"errors,omitempty"`
}

// ValueSource says where a resolved market value came from.
type ValueSource string

const (
	SourceMarketplace ValueSource = "MARKETPLACE"
	// SourceNone means no usable observation exists; the caller falls back
	// to the item's acquisition cost, never to zero.
	SourceNone ValueSource = "NONE"
)

// MarketValue is the resolver's answer for one inventory item. Absence is a
// valid outcome (Source NONE, nil Value), not an error.
type MarketValue struct {
	Value  *Money      `json:"value,omitempty"`
	Source ValueSource `json:"source"`
	AsOf   time.Time   `json:"as_of,omitzero"`
}

// SyncState tracks cumulative sync progress per user and provider.
type SyncState struct {
	UserID       int64     `db:"user_id"`
	Provider     string    `db:"provider"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
