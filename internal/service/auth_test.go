package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	domainmocks "github.com/avc/shipexpress/internal/domain/mocks"
	"github.com/avc/shipexpress/internal/utils/jwt"
	passwordmocks "github.com/avc/shipexpress/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	users  *domainmocks.UserRepositoryMock
	ledger *domainmocks.LedgerRepositoryMock
	hasher *passwordmocks.HasherMock
	jwt    *jwt.Manager
	svc    *AuthService
}

func newAuthFixture(t *testing.T, cfg AuthServiceConfig) *authFixture {
	f := &authFixture{
		users:  domainmocks.NewUserRepositoryMock(t),
		ledger: domainmocks.NewLedgerRepositoryMock(t),
		hasher: passwordmocks.NewHasherMock(t),
		jwt:    jwt.NewManager("test-secret", time.Hour),
	}
	f.svc = NewAuthService(f.users, f.ledger, f.hasher, f.jwt, cfg, zap.NewNop())
	return f
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success without signup credit", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{MinPasswordLength: 6})

		f.hasher.EXPECT().Hash("rahasia123").Return("hash", nil).Once()
		f.users.EXPECT().CreateUser(mock.Anything, "budi", "hash").
			Return(&domain.User{ID: 1, Login: "budi", PasswordHash: "hash"}, nil).Once()

		token, err := f.svc.Register(ctx, "budi", "rahasia123")
		require.NoError(t, err)

		userID, err := f.jwt.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
	})

	t.Run("Signup credit is journaled", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{SignupCredit: 50000})

		f.hasher.EXPECT().Hash("rahasia123").Return("hash", nil).Once()
		f.users.EXPECT().CreateUser(mock.Anything, "siti", "hash").
			Return(&domain.User{ID: 2, Login: "siti"}, nil).Once()
		f.ledger.EXPECT().CreateEntry(mock.Anything, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.UserID == 2 && e.Type == domain.EntryTypeSignup && e.Amount == 50000
		})).Return(nil).Once()

		token, err := f.svc.Register(ctx, "siti", "rahasia123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Signup credit failure", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{SignupCredit: 50000})

		f.hasher.EXPECT().Hash("rahasia123").Return("hash", nil).Once()
		f.users.EXPECT().CreateUser(mock.Anything, "siti", "hash").
			Return(&domain.User{ID: 2, Login: "siti"}, nil).Once()
		f.ledger.EXPECT().CreateEntry(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		token, err := f.svc.Register(ctx, "siti", "rahasia123")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{MinPasswordLength: 6})

		for _, c := range [][2]string{{"", "rahasia123"}, {"budi", ""}, {"budi", "123"}} {
			token, err := f.svc.Register(ctx, c[0], c[1])
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, token)
		}
	})

	t.Run("Hash error", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.hasher.EXPECT().Hash("rahasia123").Return("", errors.New("hash error")).Once()

		token, err := f.svc.Register(ctx, "budi", "rahasia123")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("User already exists", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.hasher.EXPECT().Hash("rahasia123").Return("hash", nil).Once()
		f.users.EXPECT().CreateUser(mock.Anything, "budi", "hash").Return(nil, domain.ErrUserExists).Once()

		_, err := f.svc.Register(ctx, "budi", "rahasia123")
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &domain.User{ID: 1, Login: "budi", PasswordHash: "hash"}

	t.Run("Success", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.users.EXPECT().GetUserByLogin(mock.Anything, "budi").Return(stored, nil).Once()
		f.hasher.EXPECT().Check("hash", "rahasia123").Return(nil).Once()

		token, err := f.svc.Login(ctx, "budi", "rahasia123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		_, err := f.svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.users.EXPECT().GetUserByLogin(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := f.svc.Login(ctx, "ghost", "rahasia123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.users.EXPECT().GetUserByLogin(mock.Anything, "budi").Return(stored, nil).Once()
		f.hasher.EXPECT().Check("hash", "salah").Return(errors.New("mismatch")).Once()

		_, err := f.svc.Login(ctx, "budi", "salah")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Database error", func(t *testing.T) {
		f := newAuthFixture(t, AuthServiceConfig{})

		f.users.EXPECT().GetUserByLogin(mock.Anything, "budi").Return(nil, errors.New("db error")).Once()

		_, err := f.svc.Login(ctx, "budi", "rahasia123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
