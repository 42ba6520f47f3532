package service

import (
	"context"
	"fmt"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/utils/money"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletService реализует domain.WalletService
type WalletService struct {
	sessions   SessionProvider
	ledgerRepo domain.LedgerRepository
	maxTopUp   int64
	logger     *zap.Logger
}

// NewWalletService создает новый WalletService.
// maxTopUp ограничивает одно пополнение, 0 снимает ограничение.
func NewWalletService(sessions SessionProvider, ledgerRepo domain.LedgerRepository, maxTopUp int64, logger *zap.Logger) *WalletService {
	return &WalletService{
		sessions:   sessions,
		ledgerRepo: ledgerRepo,
		maxTopUp:   maxTopUp,
		logger:     logger,
	}
}

// GetBalance возвращает баланс пользователя
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to open session for user %d: %w", userID, err)
	}

	current, err := sess.Account().Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to read balance for user %d: %w", userID, err)
	}

	stored, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to get balance for user %d: %w", userID, err)
	}

	return &domain.Balance{Current: current, Spent: stored.Spent}, nil
}

// TopUp пополняет баланс пользователя
func (s *WalletService) TopUp(ctx context.Context, userID int64, amount int64) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if s.maxTopUp > 0 && amount > s.maxTopUp {
		return nil, domain.NewValidationError("amount", "must not exceed "+money.Format(s.maxTopUp))
	}

	sess, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to open session for user %d: %w", userID, err)
	}

	reference := "topup-" + uuid.NewString()
	if _, err := sess.Account().Credit(ctx, amount, domain.EntryTypeTopUp, reference); err != nil {
		return nil, fmt.Errorf("wallet service: failed to top up user %d: %w", userID, err)
	}

	s.logger.Info("balance topped up",
		zap.Int64("user_id", userID),
		zap.String("amount", money.Format(amount)),
		zap.String("reference", reference),
	)

	return s.GetBalance(ctx, userID)
}

// GetHistory возвращает операции по балансу, новые первыми
func (s *WalletService) GetHistory(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to get history for user %d: %w", userID, err)
	}

	return entries, nil
}
