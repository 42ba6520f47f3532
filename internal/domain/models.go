package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceTier представляет класс скорости и цены доставки
type ServiceTier string

const (
	TierRegular ServiceTier = "regular"
	TierExpress ServiceTier = "express"
	TierSameDay ServiceTier = "sameday"
)

// ShipmentStatus представляет статус отправления
type ShipmentStatus string

const (
	ShipmentStatusCreated        ShipmentStatus = "CREATED"
	ShipmentStatusPickedUp       ShipmentStatus = "PICKED_UP"
	ShipmentStatusInTransit      ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusArrived        ShipmentStatus = "ARRIVED"
	ShipmentStatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentStatusDelivered      ShipmentStatus = "DELIVERED"
	ShipmentStatusCancelled      ShipmentStatus = "CANCELLED"
)

// Terminal сообщает, что статус больше не меняется
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCancelled
}

// EntryType представляет тип записи в журнале баланса
type EntryType string

const (
	EntryTypeTopUp    EntryType = "topup"
	EntryTypeShipment EntryType = "shipment"
	EntryTypeRefund   EntryType = "refund"
	EntryTypeSignup   EntryType = "signup"
)

// User представляет пользователя системы
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt    time.Time `json:"created_at"`
}

// ShipmentRequest описывает посылку, для которой считается стоимость
type ShipmentRequest struct {
	OriginCity      string          `json:"origin_city"`
	DestinationCity string          `json:"destination_city"`
	WeightKg        decimal.Decimal `json:"weight_kg"`
	Tier            ServiceTier     `json:"service"`
	Insured         bool            `json:"insured"`
}

// Quotation представляет рассчитанную, но еще не оплаченную стоимость
type Quotation struct {
	ID                string          `json:"id"`
	Request           ShipmentRequest `json:"request"`
	Tier              ServiceTier     `json:"service"`
	BillableKg        int64           `json:"billable_kg"`
	Amount            int64           `json:"amount"`
	EstimatedDuration string          `json:"estimated_duration"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Confirmation подтверждение пользователем показанного ему расчета
type Confirmation struct {
	QuotationID string `json:"quotation_id"`
	Amount      int64  `json:"amount"`
}

// ShipmentRecord представляет оплаченное отправление
type ShipmentRecord struct {
	ID                int64          `json:"-"`
	UserID            int64          `json:"-"`
	TrackingID        string         `json:"tracking_id"`
	QuotationID       string         `json:"quotation_id"`
	OriginCity        string         `json:"origin_city"`
	DestinationCity   string         `json:"destination_city"`
	BillableKg        int64          `json:"billable_kg"`
	Tier              ServiceTier    `json:"service"`
	Insured           bool           `json:"insured"`
	Amount            int64          `json:"amount"`
	EstimatedDuration string         `json:"estimated_duration"`
	Status            ShipmentStatus `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
}

// TrackingEvent представляет шаг в истории перемещения посылки
type TrackingEvent struct {
	TrackingID  string         `json:"-"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// Tracking объединяет отправление и его историю
type Tracking struct {
	Shipment *ShipmentRecord `json:"shipment"`
	Events   []TrackingEvent `json:"events"`
}

// LedgerEntry представляет операцию на балансе (сумма со знаком)
type LedgerEntry struct {
	ID          int64     `json:"-"`
	UserID      int64     `json:"-"`
	Type        EntryType `json:"type"`
	Amount      int64     `json:"amount"`
	Reference   string    `json:"reference"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Balance представляет баланс пользователя
type Balance struct {
	Current int64 `json:"current"`
	Spent   int64 `json:"spent"`
}

// CarrierStatus представляет ответ от системы отслеживания перевозчика
type CarrierStatus struct {
	TrackingID string          `json:"tracking_id"`
	Status     ShipmentStatus  `json:"status"`
	Events     []TrackingEvent `json:"events"`
}

// ShipmentAuthorized публикуется после успешной оплаты отправления
type ShipmentAuthorized struct {
	TrackingID  string      `json:"tracking_id"`
	UserID      int64       `json:"user_id"`
	QuotationID string      `json:"quotation_id"`
	Tier        ServiceTier `json:"service"`
	Amount      int64       `json:"amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Description возвращает описание статуса для истории отслеживания
func (s ShipmentStatus) Description() string {
	switch s {
	case ShipmentStatusCreated:
		return "Paket diterima dan diproses di kantor cabang asal"
	case ShipmentStatusPickedUp:
		return "Paket telah dijemput oleh kurir"
	case ShipmentStatusInTransit:
		return "Paket dalam perjalanan menuju kota tujuan"
	case ShipmentStatusArrived:
		return "Paket tiba di kantor cabang tujuan"
	case ShipmentStatusOutForDelivery:
		return "Paket keluar dari gudang untuk pengiriman ke alamat tujuan"
	case ShipmentStatusDelivered:
		return "Paket telah diterima oleh penerima"
	case ShipmentStatusCancelled:
		return "Pengiriman dibatalkan"
	default:
		return ""
	}
}
