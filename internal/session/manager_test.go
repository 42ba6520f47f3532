package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	domainmocks "github.com/avc/shipexpress/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManager_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Opens once per user", func(t *testing.T) {
		repo := domainmocks.NewLedgerRepositoryMock(t)
		m := NewManager(repo, repo, time.Minute, zap.NewNop())

		repo.EXPECT().GetBalance(mock.Anything, int64(1)).
			Return(&domain.Balance{Current: 25000}, nil).Once()

		var wg sync.WaitGroup
		got := make([]*Session, 10)
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := m.Get(ctx, 1)
				assert.NoError(t, err)
				got[i] = s
			}(i)
		}
		wg.Wait()

		for _, s := range got {
			assert.Same(t, got[0], s)
		}
		assert.Equal(t, 1, m.Count())

		balance, err := got[0].Account().Balance(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(25000), balance)
	})

	t.Run("Account journals through the repository", func(t *testing.T) {
		repo := domainmocks.NewLedgerRepositoryMock(t)
		m := NewManager(repo, repo, time.Minute, zap.NewNop())

		repo.EXPECT().GetBalance(mock.Anything, int64(2)).
			Return(&domain.Balance{Current: 10000}, nil).Once()
		repo.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.UserID == 2 && e.Amount == -8000
		})).Return(nil).Once()

		s, err := m.Get(ctx, 2)
		require.NoError(t, err)

		balance, err := s.Account().Debit(ctx, 8000, domain.EntryTypeShipment, "q-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), balance)
	})

	t.Run("Load error", func(t *testing.T) {
		repo := domainmocks.NewLedgerRepositoryMock(t)
		m := NewManager(repo, nil, time.Minute, zap.NewNop())

		repo.EXPECT().GetBalance(mock.Anything, int64(3)).Return(nil, errors.New("db down")).Once()

		s, err := m.Get(ctx, 3)
		assert.Error(t, err)
		assert.Nil(t, s)
		assert.Zero(t, m.Count())
	})

	t.Run("Drop reopens with fresh balance", func(t *testing.T) {
		repo := domainmocks.NewLedgerRepositoryMock(t)
		m := NewManager(repo, nil, time.Minute, zap.NewNop())

		repo.EXPECT().GetBalance(mock.Anything, int64(4)).
			Return(&domain.Balance{Current: 1000}, nil).Once()
		repo.EXPECT().GetBalance(mock.Anything, int64(4)).
			Return(&domain.Balance{Current: 5000}, nil).Once()

		first, err := m.Get(ctx, 4)
		require.NoError(t, err)

		m.Drop(4)

		second, err := m.Get(ctx, 4)
		require.NoError(t, err)
		assert.NotSame(t, first, second)

		balance, _ := second.Account().Balance(ctx)
		assert.Equal(t, int64(5000), balance)
	})
}
