// Package ledger хранит баланс пользователя в памяти и сериализует
// операции пополнения и списания.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc/shipexpress/internal/domain"
)

// Journal сохраняет операции. Append вызывается под блокировкой счета
// до изменения баланса в памяти; ошибка отменяет операцию.
type Journal interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
}

// Account баланс одного пользователя
type Account struct {
	mu      sync.Mutex
	userID  int64
	balance int64
	entries []domain.LedgerEntry
	journal Journal
	now     func() time.Time
}

// NewAccount создает счет с начальным балансом.
// journal может быть nil, тогда операции живут только в памяти.
func NewAccount(userID, opening int64, journal Journal) *Account {
	if opening < 0 {
		opening = 0
	}
	return &Account{
		userID:  userID,
		balance: opening,
		journal: journal,
		now:     time.Now,
	}
}

// UserID возвращает владельца счета
func (a *Account) UserID() int64 {
	return a.userID
}

// Balance возвращает текущий баланс
func (a *Account) Balance(_ context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance, nil
}

// Credit пополняет баланс и возвращает новое значение
func (a *Account) Credit(ctx context.Context, amount int64, kind domain.EntryType, reference string) (int64, error) {
	if amount <= 0 {
		return 0, domain.NewValidationError("amount", "must be positive")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.newEntry(kind, amount, reference)
	if err := a.appendLocked(ctx, &entry); err != nil {
		return a.balance, err
	}

	a.balance += amount
	return a.balance, nil
}

// Debit списывает amount. При нехватке средств возвращает
// *domain.InsufficientFundsError и не меняет баланс.
func (a *Account) Debit(ctx context.Context, amount int64, kind domain.EntryType, reference string) (int64, error) {
	if amount <= 0 {
		return 0, domain.NewValidationError("amount", "must be positive")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return a.balance, domain.NewInsufficientFundsError(amount, a.balance)
	}

	entry := a.newEntry(kind, -amount, reference)
	if err := a.appendLocked(ctx, &entry); err != nil {
		// Хранилище знает баланс лучше (например, списание с другого инстанса)
		var fundsErr *domain.InsufficientFundsError
		if errors.As(err, &fundsErr) {
			a.balance = fundsErr.Available
		}
		return a.balance, err
	}

	a.balance -= amount
	return a.balance, nil
}

// Entries возвращает копию операций, выполненных через этот счет
func (a *Account) Entries() []domain.LedgerEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.LedgerEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *Account) newEntry(kind domain.EntryType, amount int64, reference string) domain.LedgerEntry {
	return domain.LedgerEntry{
		UserID:      a.userID,
		Type:        kind,
		Amount:      amount,
		Reference:   reference,
		ProcessedAt: a.now(),
	}
}

func (a *Account) appendLocked(ctx context.Context, entry *domain.LedgerEntry) error {
	if a.journal != nil {
		if err := a.journal.Append(ctx, entry); err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrDuplicateEntry) {
				return err
			}
			return fmt.Errorf("ledger: failed to journal %s entry for user %d: %w", entry.Type, a.userID, err)
		}
	}

	a.entries = append(a.entries, *entry)
	return nil
}
