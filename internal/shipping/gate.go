// Package shipping подтверждает отправления: списывает стоимость
// актуального расчета и выдает номер отслеживания.
package shipping

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/session"
	"github.com/avc/shipexpress/internal/trackingid"
	"go.uber.org/zap"
)

// State стадия попытки подтверждения
type State string

const (
	StateQuoted      State = "quoted"
	StateAuthorizing State = "authorizing"
	StateAuthorized  State = "authorized"
	StateRejected    State = "rejected"
)

// Gate выполняет подтверждение отправлений
type Gate struct {
	ids    trackingid.Generator
	now    func() time.Time
	logger *zap.Logger
}

// NewGate создает Gate. now может быть nil, тогда используется time.Now.
func NewGate(ids trackingid.Generator, now func() time.Time, logger *zap.Logger) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{
		ids:    ids,
		now:    now,
		logger: logger,
	}
}

// Authorize списывает стоимость расчета q со счета сессии и создает
// запись об отправлении.
//
// Возвращает *domain.PreconditionError, если q не актуальный расчет сессии,
// и *domain.InsufficientFundsError при нехватке средств. В обоих случаях
// баланс не меняется.
func (g *Gate) Authorize(ctx context.Context, s *session.Session, q domain.Quotation) (*domain.ShipmentRecord, error) {
	var record *domain.ShipmentRecord
	state := StateQuoted

	err := s.Checkout(q, func(current domain.Quotation) error {
		state = g.transition(s, current, state, StateAuthorizing)

		trackingID, err := g.ids.Next()
		if err != nil {
			return fmt.Errorf("shipping gate: failed to issue tracking id: %w", err)
		}

		if _, err := s.Account().Debit(ctx, current.Amount, domain.EntryTypeShipment, current.ID); err != nil {
			state = g.transition(s, current, state, StateRejected)
			return err
		}

		record = newRecord(s.UserID(), trackingID, current, g.now())
		state = g.transition(s, current, state, StateAuthorized)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPrecondition) || errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, err
		}
		return nil, fmt.Errorf("shipping gate: authorization failed for user %d: %w", s.UserID(), err)
	}

	return record, nil
}

func (g *Gate) transition(s *session.Session, q domain.Quotation, from, to State) State {
	g.logger.Debug("authorization state changed",
		zap.Int64("user_id", s.UserID()),
		zap.String("quotation_id", q.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return to
}

func newRecord(userID int64, trackingID string, q domain.Quotation, createdAt time.Time) *domain.ShipmentRecord {
	return &domain.ShipmentRecord{
		UserID:            userID,
		TrackingID:        trackingID,
		QuotationID:       q.ID,
		OriginCity:        q.Request.OriginCity,
		DestinationCity:   q.Request.DestinationCity,
		BillableKg:        q.BillableKg,
		Tier:              q.Tier,
		Insured:           q.Request.Insured,
		Amount:            q.Amount,
		EstimatedDuration: q.EstimatedDuration,
		Status:            domain.ShipmentStatusCreated,
		CreatedAt:         createdAt,
	}
}
