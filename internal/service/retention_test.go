package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"market_syncer/internal/domain"
	"market_syncer/internal/service/mocks"
	"market_syncer/testdata/utils"
)

type RetentionManagerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store *mocks.MockRetentionStore

	manager *RetentionManager
}

func (s *RetentionManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockRetentionStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.manager = NewRetentionManager(s.store, logger, 90*24*time.Hour)
}

func (s *RetentionManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRetentionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(RetentionManagerTestSuite))
}

func (s *RetentionManagerTestSuite) TestRefresh_RunsDayThenMonth() {
	ctx := context.Background()

	gomock.InOrder(
		s.store.EXPECT().RollupObservations(ctx, domain.GranularityDay).Return(int64(10), nil),
		s.store.EXPECT().RollupObservations(ctx, domain.GranularityMonth).Return(int64(3), nil),
	)

	written, err := s.manager.Refresh(ctx)

	s.NoError(err)
	s.Equal(int64(13), written)
}

func (s *RetentionManagerTestSuite) TestPrune_RejectedWithoutRollup() {
	ctx := context.Background()

	// No daily rollup has ever run: pruning would destroy history that was
	// never aggregated.
	s.store.EXPECT().RollupWatermark(ctx).Return(nil, nil)

	_, err := s.manager.Prune(ctx)

	s.ErrorIs(err, domain.ErrRollupRequired)
}

func (s *RetentionManagerTestSuite) TestPrune_RejectedWithStaleWatermark() {
	ctx := context.Background()

	stale := time.Now().UTC().Add(-120 * 24 * time.Hour)
	s.store.EXPECT().RollupWatermark(ctx).Return(utils.Ptr(stale), nil)

	_, err := s.manager.Prune(ctx)

	s.ErrorIs(err, domain.ErrRollupRequired)
}

func (s *RetentionManagerTestSuite) TestPrune_DeletesPastWindow() {
	ctx := context.Background()

	fresh := time.Now().UTC().Truncate(24 * time.Hour)
	s.store.EXPECT().RollupWatermark(ctx).Return(utils.Ptr(fresh), nil)
	s.store.EXPECT().PruneObservations(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) (int64, error) {
			expected := time.Now().UTC().Add(-90 * 24 * time.Hour)
			s.WithinDuration(expected, cutoff, time.Minute)
			return 42, nil
		},
	)

	deleted, err := s.manager.Prune(ctx)

	s.NoError(err)
	s.Equal(int64(42), deleted)
}
