package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"market_syncer/internal/domain"
	"market_syncer/internal/service/mocks"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api       *mocks.MockMarketplaceAPI
	inventory *mocks.MockInventorySource
	creds     *mocks.MockCredentialsStore
	ingestor  *mocks.MockCatalogIngestor
	linker    *mocks.MockInventoryLinker
	refresher *mocks.MockAggregateRefresher
	syncState *mocks.MockSyncStateStore
	publisher *mocks.MockPublisher

	service *SyncService
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.api = mocks.NewMockMarketplaceAPI(s.ctrl)
	s.inventory = mocks.NewMockInventorySource(s.ctrl)
	s.creds = mocks.NewMockCredentialsStore(s.ctrl)
	s.ingestor = mocks.NewMockCatalogIngestor(s.ctrl)
	s.linker = mocks.NewMockInventoryLinker(s.ctrl)
	s.refresher = mocks.NewMockAggregateRefresher(s.ctrl)
	s.syncState = mocks.NewMockSyncStateStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.api.EXPECT().ID().Return("stockx").AnyTimes()
	s.api.EXPECT().Name().Return("StockX").AnyTimes()

	s.service = NewSyncService(
		s.api,
		s.inventory,
		s.creds,
		s.ingestor,
		s.linker,
		s.refresher,
		s.syncState,
		s.publisher,
		logger,
		"GBP",
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) TestSync_HappyPath() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "key-123",
		Currency:  "USD",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "key-123").Return(nil)

	items := []domain.InventoryItem{
		{ID: 10, UserID: 1, SKU: "DZ5485-612", Size: "US 9", Quantity: 1},
		{ID: 11, UserID: 1, SKU: "UNKNOWN-1", Size: "US 10", Quantity: 1},
	}
	s.inventory.EXPECT().ListByUser(ctx, int64(1)).Return(items, nil)

	// Account currency takes precedence over the configured default.
	s.ingestor.EXPECT().Ingest(ctx, []string{"DZ5485-612", "UNKNOWN-1"}, "USD").
		Return(&domain.IngestResult{Fetched: 1, Inserted: 3, Skipped: 1})

	s.linker.EXPECT().Link(ctx, items[0], "stockx").
		Return(&domain.LinkResult{Matched: true, Link: &domain.InventoryMarketLink{ID: 5}}, nil)
	s.linker.EXPECT().Link(ctx, items[1], "stockx").
		Return(&domain.LinkResult{Matched: false, Reason: "no catalog product"}, nil)

	s.refresher.EXPECT().Refresh(ctx).Return(int64(12), nil)

	s.syncState.EXPECT().Get(ctx, int64(1), "stockx").
		Return(&domain.SyncState{UserID: 1, Provider: "stockx", TotalSynced: 7}, nil)
	s.syncState.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			s.Equal(int64(10), state.TotalSynced)
			return nil
		},
	)

	s.publisher.EXPECT().PublishSyncReport(ctx, gomock.Any()).Return(nil)

	report, err := s.service.Sync(ctx, 1)

	s.NoError(err)
	s.Equal(domain.StepCompleted, report.State)
	s.Equal(2, report.InventoryCount)
	s.Equal(3, report.Ingest.Inserted)
	s.Equal(1, report.Linked)
	s.Equal([]string{"UNKNOWN-1"}, report.Unmatched)
	s.Equal(int64(12), report.RollupsWritten)
	s.Empty(report.Errors)
	s.NotZero(report.RunID)
	s.False(report.FinishedAt.IsZero())
}

func (s *SyncServiceTestSuite) TestSync_NotConnectedFailsAtVerify() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(2), "stockx").Return(&domain.MarketCredentials{
		UserID:   2,
		Provider: "stockx",
	}, nil)

	report, err := s.service.Sync(ctx, 2)

	s.ErrorIs(err, domain.ErrAuth)
	s.Equal(domain.StepFailed, report.State)
	s.NotEmpty(report.Errors)
}

func (s *SyncServiceTestSuite) TestSync_VerifyConnectionError() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "stale-key",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "stale-key").Return(domain.ErrAuth)

	report, err := s.service.Sync(ctx, 1)

	s.ErrorIs(err, domain.ErrAuth)
	s.Equal(domain.StepFailed, report.State)
}

func (s *SyncServiceTestSuite) TestSync_ZeroInventoryFails() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "key-123",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "key-123").Return(nil)
	s.inventory.EXPECT().ListByUser(ctx, int64(1)).Return(nil, nil)

	report, err := s.service.Sync(ctx, 1)

	s.ErrorIs(err, domain.ErrNoInventory)
	s.Equal(domain.StepFailed, report.State)
}

func (s *SyncServiceTestSuite) TestSync_RefreshFailureKeepsEarlierCounts() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "key-123",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "key-123").Return(nil)

	items := []domain.InventoryItem{{ID: 10, UserID: 1, SKU: "DZ5485-612", Size: "US 9", Quantity: 1}}
	s.inventory.EXPECT().ListByUser(ctx, int64(1)).Return(items, nil)
	s.ingestor.EXPECT().Ingest(ctx, []string{"DZ5485-612"}, "GBP").
		Return(&domain.IngestResult{Fetched: 1, Inserted: 2})
	s.linker.EXPECT().Link(ctx, items[0], "stockx").
		Return(&domain.LinkResult{Matched: true, Link: &domain.InventoryMarketLink{ID: 5}}, nil)

	s.refresher.EXPECT().Refresh(ctx).Return(int64(0), errors.New("db down"))

	report, err := s.service.Sync(ctx, 1)

	// Partial report: counts gathered before the failing step survive.
	s.Error(err)
	s.Equal(domain.StepFailed, report.State)
	s.Equal(2, report.Ingest.Inserted)
	s.Equal(1, report.Linked)
}

func (s *SyncServiceTestSuite) TestSync_CancellationHonoredAtStepBoundary() {
	ctx, cancel := context.WithCancel(context.Background())

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "key-123",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "key-123").DoAndReturn(
		func(context.Context, string) error {
			cancel()
			return nil
		},
	)

	report, err := s.service.Sync(ctx, 1)

	// The verify step completed; the boundary to FETCH_INVENTORY noticed the
	// cancellation and no inventory call was made.
	s.ErrorIs(err, context.Canceled)
	s.Equal(domain.StepFailed, report.State)
	s.Equal(0, report.InventoryCount)
}

func (s *SyncServiceTestSuite) TestSync_PublishFailureIsNotFatal() {
	ctx := context.Background()

	s.creds.EXPECT().Get(ctx, int64(1), "stockx").Return(&domain.MarketCredentials{
		UserID:    1,
		Provider:  "stockx",
		APIKey:    "key-123",
		Connected: true,
	}, nil)
	s.api.EXPECT().VerifyConnection(ctx, "key-123").Return(nil)

	items := []domain.InventoryItem{{ID: 10, UserID: 1, SKU: "DZ5485-612", Size: "US 9", Quantity: 1}}
	s.inventory.EXPECT().ListByUser(ctx, int64(1)).Return(items, nil)
	s.ingestor.EXPECT().Ingest(ctx, []string{"DZ5485-612"}, "GBP").
		Return(&domain.IngestResult{Fetched: 1, Inserted: 1})
	s.linker.EXPECT().Link(ctx, items[0], "stockx").
		Return(&domain.LinkResult{Matched: true, Link: &domain.InventoryMarketLink{ID: 5}}, nil)
	s.refresher.EXPECT().Refresh(ctx).Return(int64(1), nil)
	s.syncState.EXPECT().Get(ctx, int64(1), "stockx").
		Return(&domain.SyncState{UserID: 1, Provider: "stockx"}, nil)
	s.syncState.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	s.publisher.EXPECT().PublishSyncReport(ctx, gomock.Any()).Return(errors.New("broker down"))

	report, err := s.service.Sync(ctx, 1)

	s.NoError(err)
	s.Equal(domain.StepCompleted, report.State)
}
