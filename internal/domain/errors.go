package domain

import (
	"errors"
	"fmt"
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// Ошибки отправлений
var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrShipmentExists    = errors.New("shipment with this tracking id already exists")
	ErrInvalidTrackingID = errors.New("invalid tracking id")
	ErrTrackingExhausted = errors.New("tracking id space exhausted")
)

// Ошибки баланса и расчета стоимости
var (
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPrecondition      = errors.New("precondition failed")
	ErrDuplicateEntry    = errors.New("ledger entry already exists")
)

// ValidationError описывает некорректные входные данные расчета или операции
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is позволяет сравнивать через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError создает ошибку валидации поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientFundsError возвращается, когда списание превышает баланс.
// Shortfall = Required - Available.
type InsufficientFundsError struct {
	Required  int64
	Available int64
	Shortfall int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d, available %d, shortfall %d",
		e.Required, e.Available, e.Shortfall)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// NewInsufficientFundsError создает ошибку с рассчитанной нехваткой
func NewInsufficientFundsError(required, available int64) *InsufficientFundsError {
	return &InsufficientFundsError{
		Required:  required,
		Available: available,
		Shortfall: required - available,
	}
}

// PreconditionError означает попытку оплаты без актуального расчета.
// Это ошибка интеграции, повторять ее не нужно.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}
