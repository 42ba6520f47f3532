package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/service"
	"go.uber.org/zap"
)

// PoolConfig параметры пула отслеживания
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
}

type job struct {
	trackingID string
	status     domain.ShipmentStatus
}

// Pool опрашивает перевозчика по незавершенным отправлениям и
// дописывает новые события в историю
type Pool struct {
	cfg          PoolConfig
	queue        chan job
	shipmentRepo domain.ShipmentRepository
	carrier      domain.CarrierClient
	cache        domain.TrackingCache
	logger       *zap.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu          sync.Mutex
	pausedUntil time.Time
	now         func() time.Time
}

// NewPool создает worker pool
func NewPool(
	cfg PoolConfig,
	shipmentRepo domain.ShipmentRepository,
	carrier domain.CarrierClient,
	cache domain.TrackingCache,
	logger *zap.Logger,
) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 10 * time.Second
	}
	return &Pool{
		cfg:          cfg,
		queue:        make(chan job, cfg.QueueSize),
		shipmentRepo: shipmentRepo,
		carrier:      carrier,
		cache:        cache,
		logger:       logger,
		now:          time.Now,
	}
}

// Start запускает воркеры и сканер
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает пул и дожидается завершения воркеров
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("tracking worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("tracking worker stopping", zap.Int("worker_id", id))
			return
		case j := <-p.queue:
			if !p.waitPause(ctx) {
				return
			}
			p.processShipment(ctx, j)
		}
	}
}

func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingShipments(ctx)
		}
	}
}

// scanPendingShipments ставит в очередь все незавершенные отправления
func (p *Pool) scanPendingShipments(ctx context.Context) {
	shipments, err := p.shipmentRepo.GetPendingShipments(ctx)
	if err != nil {
		p.logger.Error("failed to get pending shipments", zap.Error(err))
		return
	}

	for _, s := range shipments {
		select {
		case p.queue <- job{trackingID: s.TrackingID, status: s.Status}:
		case <-ctx.Done():
			return
		default:
			p.logger.Warn("queue is full, skipping shipment", zap.String("tracking_id", s.TrackingID))
		}
	}
}

// pause приостанавливает все воркеры после ответа 429
func (p *Pool) pause(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if until := p.now().Add(d); until.After(p.pausedUntil) {
		p.pausedUntil = until
	}
}

// waitPause ждет окончания паузы; false если контекст отменен
func (p *Pool) waitPause(ctx context.Context) bool {
	p.mu.Lock()
	wait := p.pausedUntil.Sub(p.now())
	p.mu.Unlock()

	if wait <= 0 {
		return true
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// processShipment обрабатывает одно отправление
func (p *Pool) processShipment(ctx context.Context, j job) {
	p.logger.Debug("polling carrier", zap.String("tracking_id", j.trackingID))

	status, err := p.carrier.GetShipmentStatus(ctx, j.trackingID)
	if err != nil {
		var rateLimitErr *service.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.logger.Warn("carrier rate limit exceeded",
				zap.String("tracking_id", j.trackingID),
				zap.Duration("retry_after", rateLimitErr.RetryAfter),
			)
			p.pause(rateLimitErr.RetryAfter)
			return
		}

		p.logger.Error("failed to get carrier status",
			zap.String("tracking_id", j.trackingID),
			zap.Error(err),
		)
		return
	}

	// Перевозчик еще не принял отправление
	if status == nil {
		return
	}

	events := make([]domain.TrackingEvent, 0, len(status.Events))
	for _, e := range status.Events {
		e.TrackingID = j.trackingID
		if e.Description == "" {
			e.Description = e.Status.Description()
		}
		events = append(events, e)
	}

	added, err := p.shipmentRepo.AddTrackingEvents(ctx, events)
	if err != nil {
		p.logger.Error("failed to add tracking events",
			zap.String("tracking_id", j.trackingID),
			zap.Error(err),
		)
		return
	}

	changed := status.Status != "" && status.Status != j.status
	if changed {
		if err := p.shipmentRepo.UpdateShipmentStatus(ctx, j.trackingID, status.Status); err != nil {
			p.logger.Error("failed to update shipment status",
				zap.String("tracking_id", j.trackingID),
				zap.String("status", string(status.Status)),
				zap.Error(err),
			)
			return
		}
	}

	if added > 0 || changed {
		p.cache.Delete(ctx, j.trackingID)
		p.logger.Info("shipment tracking updated",
			zap.String("tracking_id", j.trackingID),
			zap.String("status", string(status.Status)),
			zap.Int("new_events", added),
		)
	}
}
