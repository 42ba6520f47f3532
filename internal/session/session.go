// Package session держит состояние одного авторизованного пользователя:
// его счет и единственный актуальный расчет стоимости.
package session

import (
	"sync"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/ledger"
)

// Session состояние пользователя между запросами
type Session struct {
	userID  int64
	account *ledger.Account

	mu      sync.Mutex
	current *domain.Quotation
}

// New создает сессию поверх счета пользователя
func New(userID int64, account *ledger.Account) *Session {
	return &Session{
		userID:  userID,
		account: account,
	}
}

// UserID возвращает владельца сессии
func (s *Session) UserID() int64 {
	return s.userID
}

// Account возвращает счет пользователя
func (s *Session) Account() *ledger.Account {
	return s.account
}

// SetQuotation делает расчет актуальным, заменяя предыдущий
func (s *Session) SetQuotation(q domain.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &q
}

// Current возвращает актуальный расчет, если он есть
func (s *Session) Current() (domain.Quotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Quotation{}, false
	}
	return *s.current, true
}

// Invalidate сбрасывает расчет после изменения входных данных
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
}

// Checkout под блокировкой сессии проверяет, что q является актуальным
// расчетом, и вызывает fn с сохраненной копией. Если fn завершилась
// без ошибки, расчет считается использованным и сбрасывается.
func (s *Session) Checkout(q domain.Quotation, fn func(current domain.Quotation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return &domain.PreconditionError{Reason: "no current quotation"}
	}
	if s.current.ID != q.ID {
		return &domain.PreconditionError{Reason: "quotation " + q.ID + " is stale"}
	}
	if s.current.Amount != q.Amount {
		return &domain.PreconditionError{Reason: "quotation amount differs from the displayed one"}
	}

	if err := fn(*s.current); err != nil {
		return err
	}

	s.current = nil
	return nil
}
