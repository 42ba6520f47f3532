package domain

import "context"

//go:generate mockery --name=UserRepository --name=LedgerRepository --name=ShipmentRepository --name=CarrierClient --name=EventPublisher --name=TrackingCache --name=AuthService --name=ShippingService --name=WalletService --output=mocks --outpkg=mocks --mockname={{.InterfaceName}}Mock --with-expecter

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// LedgerRepository определяет методы для работы с журналом баланса
type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *LedgerEntry) error
	DebitWithLock(ctx context.Context, entry *LedgerEntry) error
	Append(ctx context.Context, entry *LedgerEntry) error
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetEntries(ctx context.Context, userID int64) ([]*LedgerEntry, error)
}

// ShipmentRepository определяет методы для работы с отправлениями
type ShipmentRepository interface {
	CreateShipment(ctx context.Context, shipment *ShipmentRecord) error
	GetShipmentByTrackingID(ctx context.Context, trackingID string) (*ShipmentRecord, error)
	GetShipmentsByUserID(ctx context.Context, userID int64) ([]*ShipmentRecord, error)
	GetPendingShipments(ctx context.Context) ([]*ShipmentRecord, error)
	UpdateShipmentStatus(ctx context.Context, trackingID string, status ShipmentStatus) error
	AddTrackingEvents(ctx context.Context, events []TrackingEvent) (int, error)
	GetTrackingEvents(ctx context.Context, trackingID string) ([]TrackingEvent, error)
}

// CarrierClient определяет методы взаимодействия с системой отслеживания перевозчика
type CarrierClient interface {
	GetShipmentStatus(ctx context.Context, trackingID string) (*CarrierStatus, error)
}

// EventPublisher публикует доменные события
type EventPublisher interface {
	Publish(ctx context.Context, key string, value any) error
	Close() error
}

// TrackingCache кэширует ответы на запросы отслеживания
type TrackingCache interface {
	Get(ctx context.Context, trackingID string) (*Tracking, bool)
	Set(ctx context.Context, trackingID string, tracking *Tracking)
	Delete(ctx context.Context, trackingID string)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// ShippingService определяет методы расчета и оформления отправлений
type ShippingService interface {
	Quote(ctx context.Context, userID int64, req ShipmentRequest) (*Quotation, error)
	Compare(ctx context.Context, req ShipmentRequest) ([]Quotation, error)
	DiscardQuotation(ctx context.Context, userID int64) error
	CreateShipment(ctx context.Context, userID int64, confirm Confirmation) (*ShipmentRecord, error)
	GetShipments(ctx context.Context, userID int64) ([]*ShipmentRecord, error)
	Track(ctx context.Context, trackingID string) (*Tracking, error)
}

// WalletService определяет методы работы с балансом
type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	TopUp(ctx context.Context, userID int64, amount int64) (*Balance, error)
	GetHistory(ctx context.Context, userID int64) ([]*LedgerEntry, error)
}
