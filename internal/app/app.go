package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/shipexpress/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *pgxpool.Pool
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPool, err := openPool(ctx, cfg.DatabaseURI, cfg.DBMaxConns, logger)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(ctx, cfg, dbPool, logger)
	router := setupRouter(deps, logger)

	logger.Info("pricing configured",
		zap.Int64("rate_regular", cfg.Pricing.RateRegular),
		zap.Int64("rate_express", cfg.Pricing.RateExpress),
		zap.Int64("rate_sameday", cfg.Pricing.RateSameDay),
		zap.String("city_match", cfg.Pricing.CityMatch),
	)

	return &App{
		config: cfg,
		logger: logger,
		db:     dbPool,
		deps:   deps,
		server: createServer(cfg.RunAddress, router),
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.deps.workerPool != nil {
		a.deps.workerPool.Start(ctx)
		a.logger.Info("tracking worker pool started")
	}

	if err := a.runServer(ctx); err != nil {
		return err
	}

	a.shutdown(cancel)

	return nil
}
