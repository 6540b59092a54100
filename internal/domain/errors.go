package domain

import "errors"

var (
	// ErrAuth marks missing or rejected marketplace credentials. Fatal to
	// the current job.
	ErrAuth = errors.New("marketplace authentication failed")

	// ErrRateLimited marks a 429/503-class response for a single call.
	// Treated as a per-item failure, never a job abort.
	ErrRateLimited = errors.New("marketplace rate limited")

	// ErrNoInventory means the user has zero items to sync; the job fails
	// without partial progress because every later step needs inventory.
	ErrNoInventory = errors.New("no inventory items to sync")

	// ErrRollupRequired rejects a prune whose window has not been rolled
	// up yet. Rollup-before-prune ordering is a hard precondition.
	ErrRollupRequired = errors.New("retention window not rolled up yet")
)
