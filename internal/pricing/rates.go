package pricing

import "github.com/avc/shipexpress/internal/domain"

// Rate описывает тариф для одного класса доставки
type Rate struct {
	Tier              domain.ServiceTier
	Name              string
	PerKg             int64 // рупий за начатый килограмм
	EstimatedDuration string
}

// RateSource отдает тарифы. Статическая таблица сейчас,
// API перевозчика в будущем.
type RateSource interface {
	Lookup(tier domain.ServiceTier) (Rate, bool)
	Tiers() []domain.ServiceTier
}

// DefaultRates возвращает тарифы по умолчанию
func DefaultRates() []Rate {
	return []Rate{
		{Tier: domain.TierRegular, Name: "Regular", PerKg: 8000, EstimatedDuration: "3-4 hari"},
		{Tier: domain.TierExpress, Name: "Express", PerKg: 15000, EstimatedDuration: "1-2 hari"},
		{Tier: domain.TierSameDay, Name: "Same Day", PerKg: 25000, EstimatedDuration: "6-8 jam"},
	}
}

// RateTable неизменяемая таблица тарифов
type RateTable struct {
	rates map[domain.ServiceTier]Rate
	order []domain.ServiceTier
}

// NewRateTable создает таблицу. Порядок аргументов задает порядок вывода.
// Повторный тариф для того же класса заменяет предыдущий.
func NewRateTable(rates ...Rate) *RateTable {
	t := &RateTable{rates: make(map[domain.ServiceTier]Rate, len(rates))}
	for _, r := range rates {
		if _, exists := t.rates[r.Tier]; !exists {
			t.order = append(t.order, r.Tier)
		}
		t.rates[r.Tier] = r
	}
	return t
}

// Lookup возвращает тариф и признак того, что класс известен
func (t *RateTable) Lookup(tier domain.ServiceTier) (Rate, bool) {
	r, ok := t.rates[tier]
	return r, ok
}

// Tiers возвращает классы доставки в порядке вывода
func (t *RateTable) Tiers() []domain.ServiceTier {
	tiers := make([]domain.ServiceTier, len(t.order))
	copy(tiers, t.order)
	return tiers
}

// BaseRate возвращает цену за килограмм; 0 для неизвестного класса
func (t *RateTable) BaseRate(tier domain.ServiceTier) int64 {
	return t.rates[tier].PerKg
}

// EstimatedDuration возвращает ожидаемый срок доставки
func (t *RateTable) EstimatedDuration(tier domain.ServiceTier) string {
	return t.rates[tier].EstimatedDuration
}
