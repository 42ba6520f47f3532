package postgres

import (
	"context"
	"fmt"

	"github.com/avc/shipexpress/internal/domain"
)

// LedgerRepository реализует domain.LedgerRepository и ledger.Journal.
// Баланс не хранится отдельно, а считается как сумма записей.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const insertEntrySQL = `INSERT INTO ledger_entries (user_id, type, amount, reference, processed_at)
	 VALUES ($1, $2, $3, $4, $5)
	 RETURNING id`

// CreateEntry сохраняет запись без проверки баланса (пополнения и возвраты)
func (r *LedgerRepository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	err := r.db.QueryRow(ctx, insertEntrySQL,
		entry.UserID, entry.Type, entry.Amount, entry.Reference, entry.ProcessedAt,
	).Scan(&entry.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("repository: failed to create %s entry for user %d: %w", entry.Type, entry.UserID, err)
	}

	return nil
}

// DebitWithLock сохраняет списание (entry.Amount < 0), проверяя баланс под
// advisory lock пользователя. При нехватке средств возвращает
// *domain.InsufficientFundsError с балансом из базы.
func (r *LedgerRepository) DebitWithLock(ctx context.Context, entry *domain.LedgerEntry) error {
	required := -entry.Amount
	if required <= 0 {
		return domain.NewValidationError("amount", "debit must be negative")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for user %d: %w", entry.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, entry.UserID); err != nil {
		return fmt.Errorf("repository: failed to acquire lock for user %d: %w", entry.UserID, err)
	}

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE user_id = $1`,
		entry.UserID,
	).Scan(&balance)
	if err != nil {
		return fmt.Errorf("repository: failed to get balance for user %d: %w", entry.UserID, err)
	}

	if balance < required {
		return domain.NewInsufficientFundsError(required, balance)
	}

	err = tx.QueryRow(ctx, insertEntrySQL,
		entry.UserID, entry.Type, entry.Amount, entry.Reference, entry.ProcessedAt,
	).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("repository: failed to insert debit %s: %w", entry.Reference, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit debit transaction: %w", err)
	}

	return nil
}

// Append сохраняет запись журнала: списания идут через DebitWithLock
func (r *LedgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	if entry.Amount < 0 {
		return r.DebitWithLock(ctx, entry)
	}
	return r.CreateEntry(ctx, entry)
}

// GetBalance считает текущий баланс и сумму оплаченных отправлений за вычетом возвратов
func (r *LedgerRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount), 0) AS current,
			COALESCE(-SUM(CASE WHEN type IN ($2, $3) THEN amount ELSE 0 END), 0) AS spent
		 FROM ledger_entries
		 WHERE user_id = $1`,
		userID, domain.EntryTypeShipment, domain.EntryTypeRefund,
	).Scan(&balance.Current, &balance.Spent)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetEntries возвращает историю операций, новые первыми
func (r *LedgerRepository) GetEntries(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, amount, reference, processed_at
		 FROM ledger_entries
		 WHERE user_id = $1
		 ORDER BY processed_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get ledger entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e := &domain.LedgerEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount, &e.Reference, &e.ProcessedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}
