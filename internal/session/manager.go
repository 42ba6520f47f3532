package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/ledger"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// BalanceLoader загружает сохраненный баланс при открытии сессии
type BalanceLoader interface {
	GetBalance(ctx context.Context, userID int64) (*domain.Balance, error)
}

// Manager хранит сессии в памяти и закрывает их после простоя
type Manager struct {
	mu       sync.Mutex
	sessions *gocache.Cache
	loader   BalanceLoader
	journal  ledger.Journal
	logger   *zap.Logger
}

// NewManager создает менеджер сессий.
// idleTTL время жизни сессии без обращений.
func NewManager(loader BalanceLoader, journal ledger.Journal, idleTTL time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: gocache.New(idleTTL, idleTTL*2),
		loader:   loader,
		journal:  journal,
		logger:   logger,
	}
}

// Get возвращает сессию пользователя, открывая ее при необходимости.
// На пользователя существует не более одной сессии, чтобы все операции
// шли через один счет.
func (m *Manager) Get(ctx context.Context, userID int64) (*Session, error) {
	key := strconv.FormatInt(userID, 10)

	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.sessions.Get(key); ok {
		s := cached.(*Session)
		m.sessions.SetDefault(key, s) // продлеваем TTL
		return s, nil
	}

	balance, err := m.loader.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session: failed to load balance for user %d: %w", userID, err)
	}

	s := New(userID, ledger.NewAccount(userID, balance.Current, m.journal))
	m.sessions.SetDefault(key, s)

	m.logger.Debug("session opened",
		zap.Int64("user_id", userID),
		zap.Int64("balance", balance.Current),
	)

	return s, nil
}

// Drop закрывает сессию пользователя
func (m *Manager) Drop(userID int64) {
	m.sessions.Delete(strconv.FormatInt(userID, 10))
}

// Count возвращает число открытых сессий
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}
