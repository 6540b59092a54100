package scheduler

import (
	"context"
	"log/slog"
	"time"

	"market_syncer/internal/domain"
)

// Syncer runs the full sync pipeline for one user.
type Syncer interface {
	Sync(ctx context.Context, userID int64) (*domain.SyncReport, error)
}

// Reconciler validates a user's tracked listings against the marketplace.
type Reconciler interface {
	Reconcile(ctx context.Context, userID int64) (*domain.ReconcileReport, error)
}

// UserLister enumerates users with a connected marketplace account.
type UserLister interface {
	ListConnected(ctx context.Context, provider string) ([]int64, error)
}

type Scheduler struct {
	syncer     Syncer
	reconciler Reconciler
	users      UserLister
	provider   string
	interval   time.Duration
	jobTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(
	syncer Syncer,
	reconciler Reconciler,
	users UserLister,
	provider string,
	interval time.Duration,
	jobTimeout time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		reconciler: reconciler,
		users:      users,
		provider:   provider,
		interval:   interval,
		jobTimeout: jobTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "provider", s.provider, "interval", s.interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// runCycle syncs every connected user sequentially. One user's failure is
// logged and never stops the cycle or the scheduler.
func (s *Scheduler) runCycle(ctx context.Context) {
	users, err := s.users.ListConnected(ctx, s.provider)
	if err != nil {
		s.logger.Error("list connected users failed", "error", err)
		return
	}
	if len(users) == 0 {
		s.logger.Info("no connected users, skipping cycle")
		return
	}

	s.logger.Info("cycle started", "users", len(users))

	for _, userID := range users {
		if ctx.Err() != nil {
			return
		}
		s.runUser(ctx, userID)
	}
}

func (s *Scheduler) runUser(ctx context.Context, userID int64) {
	jobCtx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()

	report, err := s.syncer.Sync(jobCtx, userID)
	if err != nil {
		s.logger.Error("sync failed",
			"user_id", userID,
			"state", report.State,
			"error", err,
		)
		return
	}

	if _, err := s.reconciler.Reconcile(jobCtx, userID); err != nil {
		s.logger.Error("reconcile failed", "user_id", userID, "error", err)
	}
}
