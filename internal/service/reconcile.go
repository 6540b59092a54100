package service

import (
	"context"
	"fmt"
	"log/slog"

	"market_syncer/internal/domain"
)

// Reconciler brings locally tracked listings back in sync with the
// marketplace, which is authoritative for listing state. The local rows are
// a cache; remote wins on every divergence except terminal deletion.
type Reconciler struct {
	api       MarketplaceAPI
	listings  ListingStore
	links     LinkStore
	creds     CredentialsStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewReconciler(
	api MarketplaceAPI,
	listings ListingStore,
	links LinkStore,
	creds CredentialsStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		api:       api,
		listings:  listings,
		links:     links,
		creds:     creds,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("provider", api.ID()),
	}
}

// Reconcile diffs the user's tracked listings against the marketplace's
// full listing set. Per-listing failures are counted and the loop
// continues; only credential and transport failures abort the run.
func (r *Reconciler) Reconcile(ctx context.Context, userID int64) (*domain.ReconcileReport, error) {
	provider := r.api.ID()
	report := &domain.ReconcileReport{UserID: userID, Provider: provider}

	creds, err := r.creds.Get(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if creds == nil || !creds.Connected || creds.APIKey == "" {
		return nil, domain.ErrAuth
	}

	remote, err := r.api.Listings(ctx, creds.APIKey)
	if err != nil {
		return nil, fmt.Errorf("list remote listings: %w", err)
	}

	tracked, err := r.listings.ListByUser(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("list tracked listings: %w", err)
	}

	remoteByID := make(map[string]*domain.RemoteListing, len(remote))
	for i := range remote {
		remoteByID[remote[i].ID] = &remote[i]
	}
	trackedByID := make(map[string]struct{}, len(tracked))
	for i := range tracked {
		trackedByID[tracked[i].ListingID] = struct{}{}
	}

	for i := range tracked {
		local := &tracked[i]
		rl, present := remoteByID[local.ListingID]

		if local.Status == domain.ListingDeleted {
			if present {
				// Terminal state: a reappearing id is never resurrected.
				r.logger.Debug("deleted listing reappeared remotely, ignoring",
					"listing_id", local.ListingID,
				)
			}
			continue
		}

		if !present {
			if err := r.deleteListing(ctx, provider, local.ListingID); err != nil {
				report.Errors = append(report.Errors,
					fmt.Sprintf("delete %s: %v", local.ListingID, err))
				continue
			}
			report.Deleted++
			continue
		}

		if listingDiffers(local, rl) {
			if err := r.listings.UpdateFromRemote(ctx, provider, local.ListingID, rl); err != nil {
				report.Errors = append(report.Errors,
					fmt.Sprintf("update %s: %v", local.ListingID, err))
				continue
			}
			report.Updated++
		} else {
			report.Validated++
		}
	}

	for i := range remote {
		if _, known := trackedByID[remote[i].ID]; !known {
			// Provenance unknown: report only, never adopt. Guessing which
			// inventory item a stray listing belongs to would corrupt
			// valuation.
			report.Orphaned++
			r.logger.Warn("orphaned remote listing",
				"listing_id", remote[i].ID,
				"user_id", userID,
			)
		}
	}

	r.logger.Info("reconcile finished",
		"user_id", userID,
		"validated", report.Validated,
		"updated", report.Updated,
		"deleted", report.Deleted,
		"orphaned", report.Orphaned,
		"errors", len(report.Errors),
	)

	if r.publisher != nil {
		if err := r.publisher.PublishReconcileReport(ctx, report); err != nil {
			r.logger.Warn("publish reconcile report failed", "error", err)
		}
	}

	return report, nil
}

// deleteListing marks the listing deleted and clears the inventory link's
// back-reference in one transaction, so no item is left pointing at a
// listing id that no longer exists.
func (r *Reconciler) deleteListing(ctx context.Context, provider, listingID string) error {
	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.listings.MarkDeleted(txCtx, provider, listingID); err != nil {
			return fmt.Errorf("mark deleted: %w", err)
		}
		if err := r.links.ClearListingRef(txCtx, provider, listingID); err != nil {
			return fmt.Errorf("clear listing ref: %w", err)
		}
		return nil
	})
}

func listingDiffers(local *domain.TrackedListing, remote *domain.RemoteListing) bool {
	if local.Status != remote.Status {
		return true
	}
	if !local.Amount.Equal(remote.Amount) || local.Currency != remote.Currency {
		return true
	}
	switch {
	case local.ExpiresAt == nil && remote.ExpiresAt == nil:
		return false
	case local.ExpiresAt == nil || remote.ExpiresAt == nil:
		return true
	}
	return !local.ExpiresAt.Equal(*remote.ExpiresAt)
}
