package shipping

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/ledger"
	"github.com/avc/shipexpress/internal/pricing"
	"github.com/avc/shipexpress/internal/session"
	"github.com/avc/shipexpress/internal/trackingid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 18, 15, 20, 0, 0, time.UTC)

type failingGenerator struct{}

func (failingGenerator) Next() (string, error) { return "", domain.ErrTrackingExhausted }

func setup(t *testing.T, balance int64) (*Gate, *session.Session, *pricing.Calculator) {
	t.Helper()

	gate := NewGate(trackingid.NewSequence(12345678), func() time.Time { return fixedNow }, zap.NewNop())
	sess := session.New(1, ledger.NewAccount(1, balance, nil))
	calc := pricing.NewCalculator(pricing.NewRateTable(pricing.DefaultRates()...), pricing.DefaultPolicy())
	return gate, sess, calc
}

func quote(t *testing.T, calc *pricing.Calculator, sess *session.Session) domain.Quotation {
	t.Helper()

	q, err := calc.Quote(domain.ShipmentRequest{
		OriginCity:      "Bandung",
		DestinationCity: "Bandung",
		WeightKg:        decimal.RequireFromString("2.3"),
		Tier:            domain.TierRegular,
	})
	require.NoError(t, err)
	require.Equal(t, int64(24000), q.Amount)

	sess.SetQuotation(q)
	return q
}

func balanceOf(t *testing.T, sess *session.Session) int64 {
	t.Helper()
	b, err := sess.Account().Balance(context.Background())
	require.NoError(t, err)
	return b
}

func TestGate_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("Insufficient funds reports shortfall", func(t *testing.T) {
		gate, sess, calc := setup(t, 20000)
		q := quote(t, calc, sess)

		record, err := gate.Authorize(ctx, sess, q)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		var fundsErr *domain.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(4000), fundsErr.Shortfall)
		assert.Equal(t, int64(20000), balanceOf(t, sess))

		// Расчет остается актуальным для повторной попытки
		current, ok := sess.Current()
		require.True(t, ok)
		assert.Equal(t, q.ID, current.ID)
	})

	t.Run("Success debits and issues tracking id", func(t *testing.T) {
		gate, sess, calc := setup(t, 30000)
		q := quote(t, calc, sess)

		record, err := gate.Authorize(ctx, sess, q)
		require.NoError(t, err)

		assert.Equal(t, int64(6000), balanceOf(t, sess))
		assert.Equal(t, "SE123456782", record.TrackingID)
		assert.True(t, trackingid.Validate(record.TrackingID))
		assert.Equal(t, q.ID, record.QuotationID)
		assert.Equal(t, int64(24000), record.Amount)
		assert.Equal(t, int64(3), record.BillableKg)
		assert.Equal(t, domain.ShipmentStatusCreated, record.Status)
		assert.Equal(t, fixedNow, record.CreatedAt)
		assert.Equal(t, int64(1), record.UserID)

		_, ok := sess.Current()
		assert.False(t, ok, "quotation must be consumed")
	})

	t.Run("Top up then retry succeeds", func(t *testing.T) {
		gate, sess, calc := setup(t, 20000)
		q := quote(t, calc, sess)

		_, err := gate.Authorize(ctx, sess, q)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)

		_, err = sess.Account().Credit(ctx, 5000, domain.EntryTypeTopUp, "t-1")
		require.NoError(t, err)

		record, err := gate.Authorize(ctx, sess, q)
		require.NoError(t, err)
		assert.NotEmpty(t, record.TrackingID)
		assert.Equal(t, int64(1000), balanceOf(t, sess))
	})

	t.Run("Tracking ids are unique across authorizations", func(t *testing.T) {
		gate, sess, calc := setup(t, 1_000_000)

		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			record, err := gate.Authorize(ctx, sess, quote(t, calc, sess))
			require.NoError(t, err)
			_, dup := seen[record.TrackingID]
			require.False(t, dup)
			seen[record.TrackingID] = struct{}{}
		}
	})
}

func TestGate_Authorize_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("No quotation", func(t *testing.T) {
		gate, sess, calc := setup(t, 30000)
		q, err := calc.Quote(domain.ShipmentRequest{
			OriginCity: "A", DestinationCity: "B", WeightKg: decimal.NewFromInt(1), Tier: domain.TierRegular,
		})
		require.NoError(t, err)

		_, err = gate.Authorize(ctx, sess, q)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		assert.Equal(t, int64(30000), balanceOf(t, sess))
	})

	t.Run("Superseded quotation", func(t *testing.T) {
		gate, sess, calc := setup(t, 30000)
		stale := quote(t, calc, sess)
		quote(t, calc, sess)

		_, err := gate.Authorize(ctx, sess, stale)
		var preErr *domain.PreconditionError
		assert.ErrorAs(t, err, &preErr)
		assert.Equal(t, int64(30000), balanceOf(t, sess))
	})

	t.Run("Invalidated quotation", func(t *testing.T) {
		gate, sess, calc := setup(t, 30000)
		q := quote(t, calc, sess)
		sess.Invalidate()

		_, err := gate.Authorize(ctx, sess, q)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("Amount not matching the displayed quotation", func(t *testing.T) {
		gate, sess, calc := setup(t, 30000)
		q := quote(t, calc, sess)
		q.Amount = 1000

		_, err := gate.Authorize(ctx, sess, q)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		assert.Equal(t, int64(30000), balanceOf(t, sess))
	})

	t.Run("Quotation cannot be used twice", func(t *testing.T) {
		gate, sess, calc := setup(t, 100000)
		q := quote(t, calc, sess)

		_, err := gate.Authorize(ctx, sess, q)
		require.NoError(t, err)

		_, err = gate.Authorize(ctx, sess, q)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		assert.Equal(t, int64(76000), balanceOf(t, sess))
	})

	t.Run("Concurrent attempts on one quotation", func(t *testing.T) {
		gate, sess, calc := setup(t, 100000)
		q := quote(t, calc, sess)

		const attempts = 10
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = gate.Authorize(ctx, sess, q)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrPrecondition)
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(76000), balanceOf(t, sess))
	})
}

func TestGate_Authorize_GeneratorFailure(t *testing.T) {
	ctx := context.Background()

	_, sess, calc := setup(t, 30000)
	gate := NewGate(failingGenerator{}, nil, zap.NewNop())
	q := quote(t, calc, sess)

	_, err := gate.Authorize(ctx, sess, q)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTrackingExhausted))
	assert.Equal(t, int64(30000), balanceOf(t, sess))

	_, ok := sess.Current()
	assert.True(t, ok)
}
