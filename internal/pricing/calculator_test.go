package pricing

import (
	"fmt"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(policy Policy) *Calculator {
	n := 0
	fixed := time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC)
	return NewCalculator(NewRateTable(DefaultRates()...), policy,
		WithIDFunc(func() string {
			n++
			return fmt.Sprintf("q-%d", n)
		}),
		WithClock(func() time.Time { return fixed }),
	)
}

func request(weight string, tier domain.ServiceTier) domain.ShipmentRequest {
	return domain.ShipmentRequest{
		OriginCity:      "Bandung",
		DestinationCity: "Bandung",
		WeightKg:        decimal.RequireFromString(weight),
		Tier:            tier,
	}
}

func TestRateTable(t *testing.T) {
	table := NewRateTable(DefaultRates()...)

	assert.Equal(t, int64(8000), table.BaseRate(domain.TierRegular))
	assert.Equal(t, int64(15000), table.BaseRate(domain.TierExpress))
	assert.Equal(t, int64(25000), table.BaseRate(domain.TierSameDay))

	assert.Equal(t, "3-4 hari", table.EstimatedDuration(domain.TierRegular))
	assert.Equal(t, "1-2 hari", table.EstimatedDuration(domain.TierExpress))
	assert.Equal(t, "6-8 jam", table.EstimatedDuration(domain.TierSameDay))

	assert.Equal(t, []domain.ServiceTier{domain.TierRegular, domain.TierExpress, domain.TierSameDay}, table.Tiers())

	_, ok := table.Lookup("overnight")
	assert.False(t, ok)

	t.Run("Override keeps order", func(t *testing.T) {
		rates := append(DefaultRates(), Rate{Tier: domain.TierRegular, PerKg: 9000, EstimatedDuration: "3-4 hari"})
		table := NewRateTable(rates...)
		assert.Equal(t, int64(9000), table.BaseRate(domain.TierRegular))
		assert.Len(t, table.Tiers(), 3)
	})
}

func TestCalculator_Quote(t *testing.T) {
	calc := newTestCalculator(DefaultPolicy())

	t.Run("Partial kilogram rounds up", func(t *testing.T) {
		q, err := calc.Quote(request("2.3", domain.TierRegular))
		require.NoError(t, err)

		assert.Equal(t, int64(3), q.BillableKg)
		assert.Equal(t, int64(24000), q.Amount)
		assert.Equal(t, domain.TierRegular, q.Tier)
		assert.Equal(t, "3-4 hari", q.EstimatedDuration)
		assert.NotEmpty(t, q.ID)
	})

	t.Run("Weights up to one kilogram bill one unit", func(t *testing.T) {
		for _, w := range []string{"0.001", "0.5", "0.999", "1"} {
			q, err := calc.Quote(request(w, domain.TierExpress))
			require.NoError(t, err, w)
			assert.Equal(t, int64(1), q.BillableKg, w)
			assert.Equal(t, int64(15000), q.Amount, w)
		}
	})

	t.Run("Exact decimal weights do not over-bill", func(t *testing.T) {
		q, err := calc.Quote(request("3.0", domain.TierRegular))
		require.NoError(t, err)
		assert.Equal(t, int64(3), q.BillableKg)
	})

	t.Run("Monotonic in billable units", func(t *testing.T) {
		var prev int64
		for _, w := range []string{"0.2", "1", "1.01", "2", "2.5", "3", "7.9", "8", "20.1"} {
			q, err := calc.Quote(request(w, domain.TierSameDay))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q.Amount, prev, w)
			prev = q.Amount
		}
	})

	t.Run("Insurance adds flat surcharge", func(t *testing.T) {
		plain := request("4.2", domain.TierExpress)
		insured := plain
		insured.Insured = true

		a, err := calc.Quote(plain)
		require.NoError(t, err)
		b, err := calc.Quote(insured)
		require.NoError(t, err)

		assert.Equal(t, DefaultInsuranceSurcharge, b.Amount-a.Amount)
	})

	t.Run("Inter-city adds flat surcharge", func(t *testing.T) {
		same := request("1.5", domain.TierRegular)
		other := same
		other.DestinationCity = "Jakarta"

		a, err := calc.Quote(same)
		require.NoError(t, err)
		b, err := calc.Quote(other)
		require.NoError(t, err)

		assert.Less(t, a.Amount, b.Amount)
		assert.Equal(t, DefaultInterCitySurcharge, b.Amount-a.Amount)
	})

	t.Run("All surcharges combined", func(t *testing.T) {
		req := request("0.7", domain.TierSameDay)
		req.DestinationCity = "Surabaya"
		req.Insured = true

		q, err := calc.Quote(req)
		require.NoError(t, err)
		assert.Equal(t, int64(25000+5000+2000), q.Amount)
	})

	t.Run("Every quote gets a fresh id", func(t *testing.T) {
		a, err := calc.Quote(request("1", domain.TierRegular))
		require.NoError(t, err)
		b, err := calc.Quote(request("1", domain.TierRegular))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestCalculator_Quote_Validation(t *testing.T) {
	calc := newTestCalculator(DefaultPolicy())

	tests := []struct {
		name  string
		req   domain.ShipmentRequest
		field string
	}{
		{
			name:  "Zero weight",
			req:   request("0", domain.TierRegular),
			field: "weight_kg",
		},
		{
			name:  "Negative weight",
			req:   request("-1.5", domain.TierRegular),
			field: "weight_kg",
		},
		{
			name:  "Unknown tier",
			req:   request("1", "overnight"),
			field: "service",
		},
		{
			name:  "Empty tier",
			req:   request("1", ""),
			field: "service",
		},
		{
			name: "Empty origin",
			req: domain.ShipmentRequest{
				DestinationCity: "Jakarta", WeightKg: decimal.NewFromInt(1), Tier: domain.TierRegular,
			},
			field: "origin_city",
		},
		{
			name: "Blank destination",
			req: domain.ShipmentRequest{
				OriginCity: "Jakarta", DestinationCity: "   ", WeightKg: decimal.NewFromInt(1), Tier: domain.TierRegular,
			},
			field: "destination_city",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Quote(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCalculator_CityMatch(t *testing.T) {
	req := request("1", domain.TierRegular)
	req.OriginCity = "Jakarta"
	req.DestinationCity = " jakarta "

	t.Run("Exact match charges case difference", func(t *testing.T) {
		q, err := newTestCalculator(DefaultPolicy()).Quote(req)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), q.Amount)
	})

	t.Run("Normalized match exempts case difference", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.CityMatch = CityMatchNormalized

		q, err := newTestCalculator(policy).Quote(req)
		require.NoError(t, err)
		assert.Equal(t, int64(8000), q.Amount)
	})
}

func TestCalculator_QuoteAll(t *testing.T) {
	calc := newTestCalculator(DefaultPolicy())

	req := request("2.3", "")
	req.DestinationCity = "Jakarta"

	quotes, err := calc.QuoteAll(req)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	assert.Equal(t, domain.TierRegular, quotes[0].Tier)
	assert.Equal(t, int64(8000*3+2000), quotes[0].Amount)
	assert.Equal(t, domain.TierExpress, quotes[1].Tier)
	assert.Equal(t, int64(15000*3+2000), quotes[1].Amount)
	assert.Equal(t, domain.TierSameDay, quotes[2].Tier)
	assert.Equal(t, int64(25000*3+2000), quotes[2].Amount)
	assert.Equal(t, "6-8 jam", quotes[2].EstimatedDuration)

	_, err = calc.QuoteAll(request("0", ""))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
