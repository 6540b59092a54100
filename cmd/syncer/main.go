package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"market_syncer/internal/config"
	"market_syncer/internal/publisher"
	"market_syncer/internal/scheduler"
	"market_syncer/internal/service"
	"market_syncer/internal/source/stockx"
	"market_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	userID := flag.Int64("user", 0, "run a one-shot sync for this user id and exit")
	prune := flag.Bool("prune", false, "prune raw price history past the retention window and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	catalogStore := postgres.NewCatalogStore(db)
	priceStore := postgres.NewPriceStore(db)
	linkStore := postgres.NewLinkStore(db)
	listingStore := postgres.NewListingStore(db)
	inventoryStore := postgres.NewInventoryStore(db)
	credsStore := postgres.NewCredentialsStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)
	retentionStore := postgres.NewRetentionStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Marketplace client
	stockxClient := stockx.New(stockx.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	// Services
	ingestor := service.NewIngestor(
		stockxClient,
		catalogStore,
		priceStore,
		txManager,
		logger,
		cfg.API.VariantDelay,
		cfg.API.ProductDelay,
	)
	linker := service.NewLinker(catalogStore, linkStore, logger)
	retention := service.NewRetentionManager(retentionStore, logger, cfg.Retention.Window())
	syncService := service.NewSyncService(
		stockxClient,
		inventoryStore,
		credsStore,
		ingestor,
		linker,
		retention,
		syncStateStore,
		rabbitMQ,
		logger,
		cfg.Sync.DefaultCurrency,
	)
	reconciler := service.NewReconciler(
		stockxClient,
		listingStore,
		linkStore,
		credsStore,
		txManager,
		rabbitMQ,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *prune {
		deleted, err := retention.Prune(ctx)
		if err != nil {
			logger.Error("prune failed", "error", err)
			os.Exit(1)
		}
		logger.Info("prune done", "rows_deleted", deleted)
		return
	}

	if *userID != 0 {
		runOnce(ctx, cfg, syncService, reconciler, *userID, logger)
		return
	}

	sched := scheduler.NewScheduler(
		syncService,
		reconciler,
		credsStore,
		stockxClient.ID(),
		cfg.Sync.Interval,
		cfg.Sync.JobTimeout,
		logger,
	)

	logger.Info("starting market syncer",
		"provider", stockxClient.Name(),
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runOnce(
	ctx context.Context,
	cfg *config.Config,
	syncService *service.SyncService,
	reconciler *service.Reconciler,
	userID int64,
	logger *slog.Logger,
) {
	jobCtx, cancel := context.WithTimeout(ctx, cfg.Sync.JobTimeout)
	defer cancel()

	report, err := syncService.Sync(jobCtx, userID)
	if err != nil {
		logger.Error("sync failed", "user_id", userID, "state", report.State, "error", err)
		os.Exit(1)
	}
	if _, err := reconciler.Reconcile(jobCtx, userID); err != nil {
		logger.Error("reconcile failed", "user_id", userID, "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
