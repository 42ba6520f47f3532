package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/pricing"
	"github.com/avc/shipexpress/internal/session"
	"github.com/avc/shipexpress/internal/shipping"
	"github.com/avc/shipexpress/internal/trackingid"
	"go.uber.org/zap"
)

// TopicShipmentAuthorized ключ события об оплаченном отправлении
const TopicShipmentAuthorized = "shipment.authorized"

// SessionProvider выдает сессию пользователя
type SessionProvider interface {
	Get(ctx context.Context, userID int64) (*session.Session, error)
}

// ShippingService реализует domain.ShippingService
type ShippingService struct {
	calculator   *pricing.Calculator
	sessions     SessionProvider
	gate         *shipping.Gate
	shipmentRepo domain.ShipmentRepository
	publisher    domain.EventPublisher
	cache        domain.TrackingCache
	logger       *zap.Logger
}

// NewShippingService создает новый ShippingService
func NewShippingService(
	calculator *pricing.Calculator,
	sessions SessionProvider,
	gate *shipping.Gate,
	shipmentRepo domain.ShipmentRepository,
	publisher domain.EventPublisher,
	cache domain.TrackingCache,
	logger *zap.Logger,
) *ShippingService {
	return &ShippingService{
		calculator:   calculator,
		sessions:     sessions,
		gate:         gate,
		shipmentRepo: shipmentRepo,
		publisher:    publisher,
		cache:        cache,
		logger:       logger,
	}
}

// Quote рассчитывает стоимость и делает расчет актуальным для пользователя
func (s *ShippingService) Quote(ctx context.Context, userID int64, req domain.ShipmentRequest) (*domain.Quotation, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	q, err := s.calculator.Quote(req)
	if err != nil {
		// Ввод изменился и стал некорректным, старый расчет больше не действует
		sess.Invalidate()
		return nil, err
	}

	sess.SetQuotation(q)

	s.logger.Debug("quotation issued",
		zap.Int64("user_id", userID),
		zap.String("quotation_id", q.ID),
		zap.String("service", string(q.Tier)),
		zap.Int64("amount", q.Amount),
	)

	return &q, nil
}

// Compare рассчитывает стоимость по всем тарифам без сохранения
func (s *ShippingService) Compare(_ context.Context, req domain.ShipmentRequest) ([]domain.Quotation, error) {
	return s.calculator.QuoteAll(req)
}

// DiscardQuotation сбрасывает актуальный расчет пользователя
func (s *ShippingService) DiscardQuotation(ctx context.Context, userID int64) error {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return err
	}

	sess.Invalidate()
	return nil
}

// CreateShipment оплачивает подтвержденный расчет и сохраняет отправление.
// Если сохранить отправление не удалось, списание возвращается на баланс.
func (s *ShippingService) CreateShipment(ctx context.Context, userID int64, confirm domain.Confirmation) (*domain.ShipmentRecord, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.gate.Authorize(ctx, sess, domain.Quotation{ID: confirm.QuotationID, Amount: confirm.Amount})
	if err != nil {
		if errors.Is(err, domain.ErrPrecondition) || errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("shipping service: failed to authorize shipment for user %d: %w", userID, err)
	}

	if err := s.shipmentRepo.CreateShipment(ctx, record); err != nil {
		s.refund(ctx, sess, record)
		return nil, fmt.Errorf("shipping service: failed to save shipment %s: %w", record.TrackingID, err)
	}

	created := domain.TrackingEvent{
		TrackingID:  record.TrackingID,
		Status:      domain.ShipmentStatusCreated,
		Location:    record.OriginCity,
		Description: domain.ShipmentStatusCreated.Description(),
		OccurredAt:  record.CreatedAt,
	}
	if _, err := s.shipmentRepo.AddTrackingEvents(ctx, []domain.TrackingEvent{created}); err != nil {
		s.logger.Warn("failed to record initial tracking event",
			zap.String("tracking_id", record.TrackingID),
			zap.Error(err),
		)
	}

	event := domain.ShipmentAuthorized{
		TrackingID:  record.TrackingID,
		UserID:      userID,
		QuotationID: record.QuotationID,
		Tier:        record.Tier,
		Amount:      record.Amount,
		CreatedAt:   record.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, record.TrackingID, event); err != nil {
		s.logger.Warn("failed to publish shipment event",
			zap.String("topic", TopicShipmentAuthorized),
			zap.String("tracking_id", record.TrackingID),
			zap.Error(err),
		)
	}

	s.logger.Info("shipment authorized",
		zap.Int64("user_id", userID),
		zap.String("tracking_id", record.TrackingID),
		zap.Int64("amount", record.Amount),
	)

	return record, nil
}

// refund компенсирует списание за отправление, которое не удалось сохранить
func (s *ShippingService) refund(ctx context.Context, sess *session.Session, record *domain.ShipmentRecord) {
	balance, err := sess.Account().Credit(ctx, record.Amount, domain.EntryTypeRefund, record.QuotationID)
	if err != nil {
		s.logger.Error("failed to refund shipment debit",
			zap.Int64("user_id", record.UserID),
			zap.String("quotation_id", record.QuotationID),
			zap.Int64("amount", record.Amount),
			zap.Error(err),
		)
		return
	}

	s.logger.Warn("shipment debit refunded",
		zap.Int64("user_id", record.UserID),
		zap.String("quotation_id", record.QuotationID),
		zap.Int64("balance", balance),
	)
}

// GetShipments возвращает отправления пользователя
func (s *ShippingService) GetShipments(ctx context.Context, userID int64) ([]*domain.ShipmentRecord, error) {
	shipments, err := s.shipmentRepo.GetShipmentsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("shipping service: failed to get shipments for user %d: %w", userID, err)
	}

	return shipments, nil
}

// Track возвращает отправление и историю его перемещения
func (s *ShippingService) Track(ctx context.Context, trackingID string) (*domain.Tracking, error) {
	if !trackingid.Validate(trackingID) {
		return nil, domain.ErrInvalidTrackingID
	}

	if cached, ok := s.cache.Get(ctx, trackingID); ok {
		return cached, nil
	}

	shipment, err := s.shipmentRepo.GetShipmentByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("shipping service: failed to get shipment %s: %w", trackingID, err)
	}

	events, err := s.shipmentRepo.GetTrackingEvents(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("shipping service: failed to get tracking events for %s: %w", trackingID, err)
	}

	tracking := &domain.Tracking{Shipment: shipment, Events: events}
	s.cache.Set(ctx, trackingID, tracking)

	return tracking, nil
}

func (s *ShippingService) session(ctx context.Context, userID int64) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("shipping service: failed to open session for user %d: %w", userID, err)
	}
	return sess, nil
}
