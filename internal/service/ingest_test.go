package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"market_syncer/internal/domain"
	"market_syncer/internal/service/mocks"
	"market_syncer/testdata/utils"
)

type IngestorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api       *mocks.MockMarketplaceAPI
	catalog   *mocks.MockCatalogStore
	prices    *mocks.MockPriceStore
	txManager *mocks.MockTransactionManager

	ingestor *Ingestor
	logger   *slog.Logger
}

func (s *IngestorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.api = mocks.NewMockMarketplaceAPI(s.ctrl)
	s.catalog = mocks.NewMockCatalogStore(s.ctrl)
	s.prices = mocks.NewMockPriceStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.api.EXPECT().ID().Return("stockx").AnyTimes()

	// Zero delays keep the pacing code on its path without slowing tests.
	s.ingestor = NewIngestor(s.api, s.catalog, s.prices, s.txManager, s.logger, 0, 0)
}

func (s *IngestorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestorTestSuite(t *testing.T) {
	suite.Run(t, new(IngestorTestSuite))
}

func (s *IngestorTestSuite) passthroughTx(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *IngestorTestSuite) TestIngest_HappyPath() {
	ctx := context.Background()
	s.passthroughTx(ctx)

	product := &domain.CatalogProduct{
		Provider:          "stockx",
		ProviderProductID: "prod-1",
		SKU:               "DZ5485-612",
		NormalizedSKU:     "dz5485612",
	}
	variants := []domain.CatalogVariant{
		{ProviderVariantID: "var-9", Size: "US 9"},
		{ProviderVariantID: "var-10", Size: "US 10"},
	}

	s.api.EXPECT().SearchProduct(ctx, "DZ5485-612").Return(product, nil)
	s.api.EXPECT().Variants(ctx, "prod-1").Return(variants, nil)

	s.catalog.EXPECT().UpsertProduct(ctx, product).Return(int64(7), nil)
	s.catalog.EXPECT().UpsertVariants(ctx, int64(7), variants).Return(nil)

	quote := &domain.PriceQuote{
		LastSale: utils.Ptr(decimal.NewFromInt(180)),
		Currency: "GBP",
	}
	s.api.EXPECT().Quote(ctx, "prod-1", "var-9", "GBP").Return(quote, nil)
	s.api.EXPECT().Quote(ctx, "prod-1", "var-10", "GBP").Return(quote, nil)

	s.prices.EXPECT().Record(ctx, gomock.Any()).Return(true, nil).Times(2)

	result := s.ingestor.Ingest(ctx, []string{"DZ5485-612"}, "GBP")

	s.Equal(1, result.Fetched)
	s.Equal(2, result.Inserted)
	s.Equal(0, result.Skipped)
	s.Empty(result.Errors)
}

func (s *IngestorTestSuite) TestIngest_NotFoundSkipped() {
	ctx := context.Background()

	s.api.EXPECT().SearchProduct(ctx, "NOPE-000").Return(nil, nil)

	result := s.ingestor.Ingest(ctx, []string{"NOPE-000"}, "GBP")

	s.Equal(0, result.Fetched)
	s.Equal(1, result.Skipped)
	s.Empty(result.Errors)
}

func (s *IngestorTestSuite) TestIngest_OneFailureDoesNotAbortBatch() {
	ctx := context.Background()
	s.passthroughTx(ctx)

	s.api.EXPECT().SearchProduct(ctx, "BAD-111").Return(nil, errors.New("boom"))

	product := &domain.CatalogProduct{
		Provider:          "stockx",
		ProviderProductID: "prod-2",
		SKU:               "GOOD-222",
		NormalizedSKU:     "good222",
	}
	variants := []domain.CatalogVariant{{ProviderVariantID: "var-1", Size: "US 8"}}

	s.api.EXPECT().SearchProduct(ctx, "GOOD-222").Return(product, nil)
	s.api.EXPECT().Variants(ctx, "prod-2").Return(variants, nil)
	s.catalog.EXPECT().UpsertProduct(ctx, product).Return(int64(1), nil)
	s.catalog.EXPECT().UpsertVariants(ctx, int64(1), variants).Return(nil)
	s.api.EXPECT().Quote(ctx, "prod-2", "var-1", "GBP").Return(
		&domain.PriceQuote{LowestAsk: utils.Ptr(decimal.NewFromInt(95)), Currency: "GBP"}, nil)
	s.prices.EXPECT().Record(ctx, gomock.Any()).Return(true, nil)

	result := s.ingestor.Ingest(ctx, []string{"BAD-111", "GOOD-222"}, "GBP")

	s.Equal(1, result.Fetched)
	s.Equal(1, result.Inserted)
	s.Len(result.Errors, 1)
	s.Contains(result.Errors[0], "search BAD-111")
}

func (s *IngestorTestSuite) TestIngest_EmptyQuoteSkipped() {
	ctx := context.Background()
	s.passthroughTx(ctx)

	product := &domain.CatalogProduct{
		Provider:          "stockx",
		ProviderProductID: "prod-3",
		SKU:               "CT8532-104",
		NormalizedSKU:     "ct8532104",
	}
	variants := []domain.CatalogVariant{{ProviderVariantID: "var-5", Size: "US 11"}}

	s.api.EXPECT().SearchProduct(ctx, "CT8532-104").Return(product, nil)
	s.api.EXPECT().Variants(ctx, "prod-3").Return(variants, nil)
	s.catalog.EXPECT().UpsertProduct(ctx, product).Return(int64(3), nil)
	s.catalog.EXPECT().UpsertVariants(ctx, int64(3), variants).Return(nil)

	// nil quote means no asks, bids or sales; nothing gets persisted.
	s.api.EXPECT().Quote(ctx, "prod-3", "var-5", "GBP").Return(nil, nil)

	result := s.ingestor.Ingest(ctx, []string{"CT8532-104"}, "GBP")

	s.Equal(1, result.Fetched)
	s.Equal(0, result.Inserted)
	s.Equal(1, result.Skipped)
	s.Empty(result.Errors)
}

func (s *IngestorTestSuite) TestIngest_DuplicateObservationCountsAsSkipped() {
	ctx := context.Background()
	s.passthroughTx(ctx)

	product := &domain.CatalogProduct{
		Provider:          "stockx",
		ProviderProductID: "prod-4",
		SKU:               "DD1391-100",
		NormalizedSKU:     "dd1391100",
	}
	variants := []domain.CatalogVariant{{ProviderVariantID: "var-2", Size: "US 9.5"}}

	s.api.EXPECT().SearchProduct(ctx, "DD1391-100").Return(product, nil)
	s.api.EXPECT().Variants(ctx, "prod-4").Return(variants, nil)
	s.catalog.EXPECT().UpsertProduct(ctx, product).Return(int64(4), nil)
	s.catalog.EXPECT().UpsertVariants(ctx, int64(4), variants).Return(nil)
	s.api.EXPECT().Quote(ctx, "prod-4", "var-2", "GBP").Return(
		&domain.PriceQuote{LastSale: utils.Ptr(decimal.NewFromInt(120)), Currency: "GBP"}, nil)

	// Same snapshot already recorded: insert is a no-op, not an error.
	s.prices.EXPECT().Record(ctx, gomock.Any()).Return(false, nil)

	result := s.ingestor.Ingest(ctx, []string{"DD1391-100"}, "GBP")

	s.Equal(1, result.Fetched)
	s.Equal(0, result.Inserted)
	s.Equal(1, result.Skipped)
	s.Empty(result.Errors)
}

func (s *IngestorTestSuite) TestIngest_DedupesEquivalentSKUs() {
	ctx := context.Background()
	s.passthroughTx(ctx)

	product := &domain.CatalogProduct{
		Provider:          "stockx",
		ProviderProductID: "prod-5",
		SKU:               "DZ5485-612",
		NormalizedSKU:     "dz5485612",
	}

	// "DZ5485-612" and "dz5485612" normalize identically; the marketplace
	// gets asked once.
	s.api.EXPECT().SearchProduct(ctx, "DZ5485-612").Return(product, nil).Times(1)
	s.api.EXPECT().Variants(ctx, "prod-5").Return(nil, nil)
	s.catalog.EXPECT().UpsertProduct(ctx, product).Return(int64(5), nil)
	s.catalog.EXPECT().UpsertVariants(ctx, int64(5), gomock.Any()).Return(nil)

	result := s.ingestor.Ingest(ctx, []string{"DZ5485-612", "dz5485612"}, "GBP")

	s.Equal(1, result.Fetched)
	s.Empty(result.Errors)
}
