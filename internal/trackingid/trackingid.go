// Package trackingid выдает номера отслеживания вида SE + 9 цифр.
// Последняя цифра контрольная (алгоритм Луна), поэтому опечатки
// отсекаются до обращения к хранилищу.
package trackingid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/utils/luhn"
)

const (
	// Prefix префикс всех номеров
	Prefix = "SE"

	bodyDigits = 8
	space      = 100_000_000 // 10^bodyDigits
)

// Generator выдает уникальные в пределах процесса номера
type Generator interface {
	Next() (string, error)
}

// Format собирает номер из порядкового значения n < 10^8
func Format(n uint64) (string, error) {
	if n >= space {
		return "", fmt.Errorf("trackingid: value %d out of range", n)
	}

	body := fmt.Sprintf("%0*d", bodyDigits, n)
	check, err := luhn.CheckDigit(body)
	if err != nil {
		return "", fmt.Errorf("trackingid: %w", err)
	}

	return fmt.Sprintf("%s%s%d", Prefix, body, check), nil
}

// Validate проверяет префикс, длину и контрольную цифру
func Validate(id string) bool {
	if !strings.HasPrefix(id, Prefix) {
		return false
	}

	digits := id[len(Prefix):]
	if len(digits) != bodyDigits+1 {
		return false
	}

	return luhn.Validate(digits)
}

// Sequence выдает номера по возрастанию начиная с seed.
// После 10^8 выданных номеров возвращает domain.ErrTrackingExhausted.
type Sequence struct {
	seed   uint64
	issued atomic.Uint64
}

// NewSequence создает генератор со стартовым значением seed
func NewSequence(seed uint64) *Sequence {
	return &Sequence{seed: seed % space}
}

// SeedFromClock повторяет поведение старого клиента: последние цифры времени в мс
func SeedFromClock(t time.Time) uint64 {
	return uint64(t.UnixMilli()) % space
}

// Next возвращает следующий номер
func (s *Sequence) Next() (string, error) {
	n := s.issued.Add(1) - 1
	if n >= space {
		return "", domain.ErrTrackingExhausted
	}

	return Format((s.seed + n) % space)
}

// Random выдает случайные номера и помнит выданные, чтобы не повторяться
type Random struct {
	mu     sync.Mutex
	issued map[string]struct{}
	limit  int
}

// NewRandom создает генератор случайных номеров.
// limit ограничивает число попыток при коллизиях.
func NewRandom(limit int) *Random {
	if limit <= 0 {
		limit = 16
	}
	return &Random{
		issued: make(map[string]struct{}),
		limit:  limit,
	}
}

// Next возвращает новый номер, не выданный ранее этим генератором
func (r *Random) Next() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.issued) >= space {
		return "", domain.ErrTrackingExhausted
	}

	for attempt := 0; attempt < r.limit; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(space))
		if err != nil {
			return "", fmt.Errorf("trackingid: failed to read random value: %w", err)
		}

		id, err := Format(n.Uint64())
		if err != nil {
			return "", err
		}

		if _, seen := r.issued[id]; seen {
			continue
		}
		r.issued[id] = struct{}{}

		return id, nil
	}

	return "", fmt.Errorf("trackingid: no unique id after %d attempts", r.limit)
}
