package app

import (
	"context"
	"time"

	"github.com/avc/shipexpress/internal/cache"
	"github.com/avc/shipexpress/internal/config"
	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/events"
	"github.com/avc/shipexpress/internal/handlers"
	"github.com/avc/shipexpress/internal/pricing"
	"github.com/avc/shipexpress/internal/repository/postgres"
	"github.com/avc/shipexpress/internal/service"
	"github.com/avc/shipexpress/internal/session"
	"github.com/avc/shipexpress/internal/shipping"
	"github.com/avc/shipexpress/internal/trackingid"
	"github.com/avc/shipexpress/internal/utils/jwt"
	"github.com/avc/shipexpress/internal/utils/password"
	"github.com/avc/shipexpress/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	serviceName       = "shipexpress"
	rateLimiterIdle   = 5 * time.Minute
	redisPingTimeout  = 2 * time.Second
	trackingIDRetries = 16
)

// repositories содержит все репозитории приложения
type repositories struct {
	user     domain.UserRepository
	ledger   domain.LedgerRepository
	shipment domain.ShipmentRepository
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	shipping domain.ShippingService
	wallet   domain.WalletService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	quotes    *handlers.QuotesHandler
	shipments *handlers.ShipmentsHandler
	wallet    *handlers.WalletHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	rateLimiter *handlers.RateLimiter
	workerPool  *worker.Pool
	publisher   domain.EventPublisher
	redis       *redis.Client
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	deps := &dependencies{}

	deps.repos = &repositories{
		user:     postgres.NewUserRepository(dbPool),
		ledger:   postgres.NewLedgerRepository(dbPool),
		shipment: postgres.NewShipmentRepository(dbPool),
	}

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	deps.jwtManager = jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	trackingCache := deps.initTrackingCache(ctx, cfg, logger)
	deps.publisher = initPublisher(cfg, logger)

	calculator := pricing.NewCalculator(rateTable(cfg.Pricing), pricing.Policy{
		InsuranceSurcharge: cfg.Pricing.InsuranceSurcharge,
		InterCitySurcharge: cfg.Pricing.InterCitySurcharge,
		CityMatch:          pricing.CityMatch(cfg.Pricing.CityMatch),
	})
	sessions := session.NewManager(deps.repos.ledger, deps.repos.ledger, cfg.SessionTTL, logger)
	gate := shipping.NewGate(trackingIDs(cfg.TrackingIDStrategy), nil, logger)

	deps.services = &services{
		auth: service.NewAuthService(deps.repos.user, deps.repos.ledger, passwordHasher, deps.jwtManager,
			service.AuthServiceConfig{
				MinPasswordLength: cfg.MinPasswordLength,
				SignupCredit:      cfg.SignupCredit,
			}, logger),
		shipping: service.NewShippingService(calculator, sessions, gate, deps.repos.shipment,
			deps.publisher, trackingCache, logger),
		wallet: service.NewWalletService(sessions, deps.repos.ledger, cfg.MaxTopUp, logger),
	}

	deps.handlers = &handlerSet{
		auth:      handlers.NewAuthHandler(deps.services.auth, logger),
		quotes:    handlers.NewQuotesHandler(deps.services.shipping, logger),
		shipments: handlers.NewShipmentsHandler(deps.services.shipping, logger),
		wallet:    handlers.NewWalletHandler(deps.services.wallet, logger),
		health:    handlers.NewHealthHandler(dbPool, logger),
	}

	if cfg.RateLimit > 0 {
		deps.rateLimiter = handlers.NewRateLimiter(ctx, cfg.RateLimit, cfg.RateBurst, rateLimiterIdle)
	}

	// Без адреса перевозчика статусы не обновляются, отправления остаются в CREATED
	if cfg.CarrierAddress != "" {
		deps.workerPool = worker.NewPool(worker.PoolConfig{
			Workers:      cfg.WorkerPoolSize,
			QueueSize:    cfg.WorkerQueueSize,
			ScanInterval: cfg.WorkerScanInterval,
		}, deps.repos.shipment, service.NewCarrierClient(cfg.CarrierAddress, cfg.CarrierTimeout), trackingCache, logger)
	} else {
		logger.Warn("carrier address is not set, tracking worker disabled")
	}

	return deps
}

// initTrackingCache выбирает Redis, если он задан и отвечает, иначе кэш в памяти
func (d *dependencies) initTrackingCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) domain.TrackingCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryTrackingCache(cfg.TrackingCacheTTL)
	}

	client := cache.NewRedisClient(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory tracking cache",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = client.Close()
		return cache.NewMemoryTrackingCache(cfg.TrackingCacheTTL)
	}

	logger.Info("using redis tracking cache", zap.String("addr", cfg.RedisAddr))
	d.redis = client
	return cache.NewRedisTrackingCache(client, serviceName, cfg.TrackingCacheTTL, logger)
}

func initPublisher(cfg *config.Config, logger *zap.Logger) domain.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NewLogPublisher(service.TopicShipmentAuthorized, logger)
	}

	logger.Info("publishing shipment events to kafka",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
	)
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, service.TopicShipmentAuthorized, logger)
}

// rateTable применяет тарифы из конфигурации к таблице по умолчанию
func rateTable(p config.Pricing) *pricing.RateTable {
	perKg := map[domain.ServiceTier]int64{
		domain.TierRegular: p.RateRegular,
		domain.TierExpress: p.RateExpress,
		domain.TierSameDay: p.RateSameDay,
	}

	rates := pricing.DefaultRates()
	for i := range rates {
		if v, ok := perKg[rates[i].Tier]; ok && v > 0 {
			rates[i].PerKg = v
		}
	}
	return pricing.NewRateTable(rates...)
}

func trackingIDs(strategy string) trackingid.Generator {
	if strategy == config.TrackingIDRandom {
		return trackingid.NewRandom(trackingIDRetries)
	}
	return trackingid.NewSequence(trackingid.SeedFromClock(time.Now()))
}
