package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/avc/shipexpress/internal/utils/jwt"
	"github.com/avc/shipexpress/internal/utils/password"
	"go.uber.org/zap"
)

// AuthServiceConfig параметры регистрации
type AuthServiceConfig struct {
	MinPasswordLength int
	// SignupCredit начальный баланс нового пользователя, 0 отключает начисление
	SignupCredit int64
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	ledgerRepo     domain.LedgerRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	cfg            AuthServiceConfig
	logger         *zap.Logger
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	ledgerRepo domain.LedgerRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	cfg AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		ledgerRepo:     ledgerRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register регистрирует нового пользователя и возвращает токен
func (s *AuthService) Register(ctx context.Context, login, userPassword string) (string, error) {
	if login == "" || userPassword == "" {
		return "", fmt.Errorf("auth service: empty login or password: %w", domain.ErrInvalidInput)
	}
	if len(userPassword) < s.cfg.MinPasswordLength {
		return "", fmt.Errorf("auth service: password shorter than %d: %w", s.cfg.MinPasswordLength, domain.ErrInvalidInput)
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register user %q: %w", login, err)
	}

	if s.cfg.SignupCredit > 0 {
		entry := &domain.LedgerEntry{
			UserID:      user.ID,
			Type:        domain.EntryTypeSignup,
			Amount:      s.cfg.SignupCredit,
			Reference:   "signup",
			ProcessedAt: time.Now(),
		}
		if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
			return "", fmt.Errorf("auth service: failed to grant signup credit to user %d: %w", user.ID, err)
		}
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("login", login))

	return s.issueToken(user.ID)
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	if login == "" || userPassword == "" {
		return "", fmt.Errorf("auth service: empty login or password: %w", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get user %q: %w", login, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID int64) (string, error) {
	token, err := s.jwtManager.Generate(userID)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", userID, err)
	}
	return token, nil
}
