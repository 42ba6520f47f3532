package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	domainmocks "github.com/avc/shipexpress/internal/domain/mocks"
	"github.com/avc/shipexpress/internal/ledger"
	"github.com/avc/shipexpress/internal/pricing"
	"github.com/avc/shipexpress/internal/session"
	"github.com/avc/shipexpress/internal/shipping"
	"github.com/avc/shipexpress/internal/trackingid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var shippedAt = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

// stubSessions держит сессии в памяти без загрузки баланса
type stubSessions struct {
	sessions map[int64]*session.Session
	err      error
}

func newStubSessions(balances map[int64]int64) *stubSessions {
	s := &stubSessions{sessions: make(map[int64]*session.Session)}
	for userID, balance := range balances {
		s.sessions[userID] = session.New(userID, ledger.NewAccount(userID, balance, nil))
	}
	return s
}

func (s *stubSessions) Get(_ context.Context, userID int64) (*session.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sessions[userID], nil
}

type shippingFixture struct {
	sessions  *stubSessions
	shipments *domainmocks.ShipmentRepositoryMock
	publisher *domainmocks.EventPublisherMock
	cache     *domainmocks.TrackingCacheMock
	svc       *ShippingService
}

func newShippingFixture(t *testing.T, balance int64) *shippingFixture {
	f := &shippingFixture{
		sessions:  newStubSessions(map[int64]int64{1: balance}),
		shipments: domainmocks.NewShipmentRepositoryMock(t),
		publisher: domainmocks.NewEventPublisherMock(t),
		cache:     domainmocks.NewTrackingCacheMock(t),
	}

	calc := pricing.NewCalculator(pricing.NewRateTable(pricing.DefaultRates()...), pricing.DefaultPolicy())
	gate := shipping.NewGate(trackingid.NewSequence(12345678), func() time.Time { return shippedAt }, zap.NewNop())
	f.svc = NewShippingService(calc, f.sessions, gate, f.shipments, f.publisher, f.cache, zap.NewNop())
	return f
}

func (f *shippingFixture) balance(t *testing.T) int64 {
	b, err := f.sessions.sessions[1].Account().Balance(context.Background())
	require.NoError(t, err)
	return b
}

// Jakarta -> Jakarta, 2.3 кг, regular: 8000 * 3 = 24000
func sameCityRequest() domain.ShipmentRequest {
	return domain.ShipmentRequest{
		OriginCity:      "Jakarta",
		DestinationCity: "Jakarta",
		WeightKg:        decimal.RequireFromString("2.3"),
		Tier:            domain.TierRegular,
	}
}

func confirmOf(q *domain.Quotation) domain.Confirmation {
	return domain.Confirmation{QuotationID: q.ID, Amount: q.Amount}
}

func TestShippingService_CreateShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newShippingFixture(t, 30000)

		q, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)
		require.Equal(t, int64(24000), q.Amount)

		f.shipments.EXPECT().CreateShipment(mock.Anything, mock.MatchedBy(func(r *domain.ShipmentRecord) bool {
			return r.TrackingID == "SE123456782" && r.Amount == 24000 && r.UserID == 1
		})).Return(nil).Once()
		f.shipments.EXPECT().AddTrackingEvents(mock.Anything, mock.MatchedBy(func(events []domain.TrackingEvent) bool {
			return len(events) == 1 &&
				events[0].Status == domain.ShipmentStatusCreated &&
				events[0].Location == "Jakarta" &&
				events[0].OccurredAt.Equal(shippedAt)
		})).Return(1, nil).Once()
		f.publisher.EXPECT().Publish(mock.Anything, "SE123456782", mock.AnythingOfType("domain.ShipmentAuthorized")).
			Return(nil).Once()

		record, err := f.svc.CreateShipment(ctx, 1, confirmOf(q))
		require.NoError(t, err)
		assert.Equal(t, "SE123456782", record.TrackingID)
		assert.Equal(t, q.ID, record.QuotationID)
		assert.Equal(t, shippedAt, record.CreatedAt)
		assert.Equal(t, int64(6000), f.balance(t))

		// Расчет использован, повторная оплата невозможна
		_, err = f.svc.CreateShipment(ctx, 1, confirmOf(q))
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		assert.Equal(t, int64(6000), f.balance(t))
	})

	t.Run("Insufficient funds keeps quotation current", func(t *testing.T) {
		f := newShippingFixture(t, 20000)

		q, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)

		_, err = f.svc.CreateShipment(ctx, 1, confirmOf(q))

		var fundsErr *domain.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(24000), fundsErr.Required)
		assert.Equal(t, int64(20000), fundsErr.Available)
		assert.Equal(t, int64(4000), fundsErr.Shortfall)
		assert.Equal(t, int64(20000), f.balance(t))

		current, ok := f.sessions.sessions[1].Current()
		require.True(t, ok)
		assert.Equal(t, q.ID, current.ID)
	})

	t.Run("Stale or altered confirmation", func(t *testing.T) {
		f := newShippingFixture(t, 100000)

		first, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)
		second, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		_, err = f.svc.CreateShipment(ctx, 1, confirmOf(first))
		assert.ErrorIs(t, err, domain.ErrPrecondition)

		_, err = f.svc.CreateShipment(ctx, 1, domain.Confirmation{QuotationID: second.ID, Amount: 1000})
		assert.ErrorIs(t, err, domain.ErrPrecondition)

		assert.Equal(t, int64(100000), f.balance(t))
	})

	t.Run("Discarded quotation", func(t *testing.T) {
		f := newShippingFixture(t, 100000)

		q, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)
		require.NoError(t, f.svc.DiscardQuotation(ctx, 1))

		_, err = f.svc.CreateShipment(ctx, 1, confirmOf(q))
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("Save failure refunds the debit", func(t *testing.T) {
		f := newShippingFixture(t, 30000)

		q, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)

		f.shipments.EXPECT().CreateShipment(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		record, err := f.svc.CreateShipment(ctx, 1, confirmOf(q))
		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Equal(t, int64(30000), f.balance(t))

		entries := f.sessions.sessions[1].Account().Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, domain.EntryTypeShipment, entries[0].Type)
		assert.Equal(t, domain.EntryTypeRefund, entries[1].Type)
		assert.Equal(t, q.ID, entries[1].Reference)
	})

	t.Run("Publish and timeline failures do not fail the shipment", func(t *testing.T) {
		f := newShippingFixture(t, 30000)

		q, err := f.svc.Quote(ctx, 1, sameCityRequest())
		require.NoError(t, err)

		f.shipments.EXPECT().CreateShipment(mock.Anything, mock.Anything).Return(nil).Once()
		f.shipments.EXPECT().AddTrackingEvents(mock.Anything, mock.Anything).Return(0, errors.New("db error")).Once()
		f.publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		record, err := f.svc.CreateShipment(ctx, 1, confirmOf(q))
		require.NoError(t, err)
		assert.NotEmpty(t, record.TrackingID)
	})

	t.Run("Session error", func(t *testing.T) {
		f := newShippingFixture(t, 30000)
		f.sessions.err = errors.New("db down")

		_, err := f.svc.CreateShipment(ctx, 1, domain.Confirmation{QuotationID: "x", Amount: 1})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestShippingService_Quote(t *testing.T) {
	ctx := context.Background()
	f := newShippingFixture(t, 0)

	q, err := f.svc.Quote(ctx, 1, sameCityRequest())
	require.NoError(t, err)

	req := sameCityRequest()
	req.WeightKg = decimal.Zero
	_, err = f.svc.Quote(ctx, 1, req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "weight_kg", validationErr.Field)

	// Некорректный ввод сбрасывает прежний расчет
	_, ok := f.sessions.sessions[1].Current()
	assert.False(t, ok)
	_, err = f.svc.CreateShipment(ctx, 1, confirmOf(q))
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestShippingService_Compare(t *testing.T) {
	f := newShippingFixture(t, 0)

	req := sameCityRequest()
	req.Tier = ""
	req.Insured = true

	quotes, err := f.svc.Compare(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, int64(29000), quotes[0].Amount)
	assert.Equal(t, int64(50000), quotes[1].Amount)
	assert.Equal(t, int64(80000), quotes[2].Amount)

	// Сравнение не трогает сессию
	_, ok := f.sessions.sessions[1].Current()
	assert.False(t, ok)
}

func TestShippingService_Track(t *testing.T) {
	ctx := context.Background()
	shipment := &domain.ShipmentRecord{TrackingID: "SE123456782", Status: domain.ShipmentStatusInTransit}
	events := []domain.TrackingEvent{{TrackingID: "SE123456782", Status: domain.ShipmentStatusCreated, Location: "Jakarta"}}

	t.Run("Malformed id", func(t *testing.T) {
		f := newShippingFixture(t, 0)

		for _, id := range []string{"", "SE123456781", "XX123456782", "SE12345678"} {
			_, err := f.svc.Track(ctx, id)
			assert.ErrorIs(t, err, domain.ErrInvalidTrackingID, id)
		}
	})

	t.Run("Cache hit", func(t *testing.T) {
		f := newShippingFixture(t, 0)
		cached := &domain.Tracking{Shipment: shipment, Events: events}

		f.cache.EXPECT().Get(mock.Anything, "SE123456782").Return(cached, true).Once()

		tracking, err := f.svc.Track(ctx, "SE123456782")
		require.NoError(t, err)
		assert.Same(t, cached, tracking)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		f := newShippingFixture(t, 0)

		f.cache.EXPECT().Get(mock.Anything, "SE123456782").Return(nil, false).Once()
		f.shipments.EXPECT().GetShipmentByTrackingID(mock.Anything, "SE123456782").Return(shipment, nil).Once()
		f.shipments.EXPECT().GetTrackingEvents(mock.Anything, "SE123456782").Return(events, nil).Once()
		f.cache.EXPECT().Set(mock.Anything, "SE123456782", mock.Anything).Return().Once()

		tracking, err := f.svc.Track(ctx, "SE123456782")
		require.NoError(t, err)
		assert.Equal(t, shipment, tracking.Shipment)
		assert.Len(t, tracking.Events, 1)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newShippingFixture(t, 0)

		f.cache.EXPECT().Get(mock.Anything, "SE123456782").Return(nil, false).Once()
		f.shipments.EXPECT().GetShipmentByTrackingID(mock.Anything, "SE123456782").Return(nil, domain.ErrShipmentNotFound).Once()

		_, err := f.svc.Track(ctx, "SE123456782")
		assert.ErrorIs(t, err, domain.ErrShipmentNotFound)
	})
}

func TestShippingService_GetShipments(t *testing.T) {
	f := newShippingFixture(t, 0)

	f.shipments.EXPECT().GetShipmentsByUserID(mock.Anything, int64(1)).
		Return([]*domain.ShipmentRecord{{TrackingID: "SE123456782"}}, nil).Once()

	shipments, err := f.svc.GetShipments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, shipments, 1)

	f.shipments.EXPECT().GetShipmentsByUserID(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()
	_, err = f.svc.GetShipments(context.Background(), 1)
	assert.Error(t, err)
}
