package pricing

import (
	"strings"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CityMatch определяет, как сравниваются города при расчете надбавки
type CityMatch string

const (
	// CityMatchExact точное сравнение строк, как в исходном клиенте
	CityMatchExact CityMatch = "exact"
	// CityMatchNormalized без учета регистра и крайних пробелов
	CityMatchNormalized CityMatch = "normalized"
)

const (
	DefaultInsuranceSurcharge int64 = 5000
	DefaultInterCitySurcharge int64 = 2000
)

// Policy содержит фиксированные надбавки
type Policy struct {
	InsuranceSurcharge int64
	InterCitySurcharge int64
	CityMatch          CityMatch
}

// DefaultPolicy возвращает надбавки по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		InsuranceSurcharge: DefaultInsuranceSurcharge,
		InterCitySurcharge: DefaultInterCitySurcharge,
		CityMatch:          CityMatchExact,
	}
}

// SameCity сообщает, освобождена ли доставка от междугородней надбавки
func (p Policy) SameCity(origin, destination string) bool {
	if p.CityMatch == CityMatchNormalized {
		return strings.EqualFold(strings.TrimSpace(origin), strings.TrimSpace(destination))
	}
	return origin == destination
}

// Calculator считает стоимость доставки. Безопасен для конкурентного использования.
type Calculator struct {
	rates  RateSource
	policy Policy
	newID  func() string
	now    func() time.Time
}

// Option настраивает Calculator
type Option func(*Calculator)

// WithIDFunc подменяет генератор идентификаторов расчета
func WithIDFunc(fn func() string) Option {
	return func(c *Calculator) { c.newID = fn }
}

// WithClock подменяет источник времени
func WithClock(fn func() time.Time) Option {
	return func(c *Calculator) { c.now = fn }
}

// NewCalculator создает калькулятор
func NewCalculator(rates RateSource, policy Policy, opts ...Option) *Calculator {
	c := &Calculator{
		rates:  rates,
		policy: policy,
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BillableUnits округляет вес вверх до целых килограммов
func BillableUnits(weightKg decimal.Decimal) int64 {
	return weightKg.Ceil().IntPart()
}

// Quote рассчитывает стоимость для одного класса доставки.
// Каждый вызов дает новый расчет с новым ID.
func (c *Calculator) Quote(req domain.ShipmentRequest) (domain.Quotation, error) {
	if err := validateParcel(req); err != nil {
		return domain.Quotation{}, err
	}

	rate, ok := c.rates.Lookup(req.Tier)
	if !ok {
		return domain.Quotation{}, domain.NewValidationError("service", "unknown service tier "+strings.TrimSpace(string(req.Tier)))
	}

	return c.price(req, rate), nil
}

// QuoteAll рассчитывает стоимость по всем классам доставки.
// Поле Tier запроса игнорируется.
func (c *Calculator) QuoteAll(req domain.ShipmentRequest) ([]domain.Quotation, error) {
	if err := validateParcel(req); err != nil {
		return nil, err
	}

	tiers := c.rates.Tiers()
	quotes := make([]domain.Quotation, 0, len(tiers))
	for _, tier := range tiers {
		rate, _ := c.rates.Lookup(tier)
		r := req
		r.Tier = tier
		quotes = append(quotes, c.price(r, rate))
	}

	return quotes, nil
}

func (c *Calculator) price(req domain.ShipmentRequest, rate Rate) domain.Quotation {
	units := BillableUnits(req.WeightKg)
	amount := rate.PerKg * units

	if req.Insured {
		amount += c.policy.InsuranceSurcharge
	}

	if !c.policy.SameCity(req.OriginCity, req.DestinationCity) {
		amount += c.policy.InterCitySurcharge
	}

	return domain.Quotation{
		ID:                c.newID(),
		Request:           req,
		Tier:              rate.Tier,
		BillableKg:        units,
		Amount:            amount,
		EstimatedDuration: rate.EstimatedDuration,
		CreatedAt:         c.now(),
	}
}

func validateParcel(req domain.ShipmentRequest) error {
	if strings.TrimSpace(req.OriginCity) == "" {
		return domain.NewValidationError("origin_city", "must not be empty")
	}
	if strings.TrimSpace(req.DestinationCity) == "" {
		return domain.NewValidationError("destination_city", "must not be empty")
	}
	if !req.WeightKg.IsPositive() {
		return domain.NewValidationError("weight_kg", "must be greater than zero")
	}
	return nil
}
