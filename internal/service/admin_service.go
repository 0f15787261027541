package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/service/auth"
	"github.com/phrazzld/nani-api/internal/store"
)

// MinPasswordLength applies to new admin passwords.
const MinPasswordLength = 4

// AdminService guards catalog mutations behind a single shared password.
type AdminService interface {
	// Login returns an admin token when password matches.
	Login(ctx context.Context, password string) (string, error)

	// ChangePassword replaces the stored hash after checking current.
	ChangePassword(ctx context.Context, current, next string) error
}

type adminServiceImpl struct {
	settings        store.SettingsStore
	jwt             auth.JWTService
	passwords       auth.PasswordVerifier
	defaultPassword string
	logger          *slog.Logger
}

// NewAdminService builds the admin gate. defaultPassword is used to seed the
// hash the first time it is needed.
func NewAdminService(
	settings store.SettingsStore,
	jwt auth.JWTService,
	passwords auth.PasswordVerifier,
	defaultPassword string,
	logger *slog.Logger,
) (AdminService, error) {
	if settings == nil || jwt == nil || passwords == nil {
		return nil, errors.New("admin service dependencies cannot be nil")
	}
	if len(defaultPassword) < MinPasswordLength {
		return nil, errors.New("default admin password is too short")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &adminServiceImpl{
		settings:        settings,
		jwt:             jwt,
		passwords:       passwords,
		defaultPassword: defaultPassword,
		logger:          logger.With("component", "admin_service"),
	}, nil
}

// passwordHash loads the stored hash, seeding it from the default password
// when the settings table has none yet.
func (s *adminServiceImpl) passwordHash(ctx context.Context) (string, error) {
	hash, err := s.settings.Get(ctx, store.SettingAdminPasswordHash)
	if err == nil {
		return hash, nil
	}
	if !errors.Is(err, store.ErrSettingNotFound) {
		return "", err
	}

	hash, err = s.passwords.Hash(s.defaultPassword)
	if err != nil {
		return "", err
	}
	if err := s.settings.Set(ctx, store.SettingAdminPasswordHash, hash); err != nil {
		return "", err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("seeded admin password from configuration")
	return hash, nil
}

func (s *adminServiceImpl) Login(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", domain.NewValidationError("password", "is required", nil)
	}
	hash, err := s.passwordHash(ctx)
	if err != nil {
		return "", err
	}
	if err := s.passwords.Compare(hash, password); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("admin login failed")
		return "", ErrWrongPassword
	}
	return s.jwt.GenerateToken(ctx)
}

func (s *adminServiceImpl) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" || next == "" {
		return domain.NewValidationError("password", "current and new password are required", nil)
	}
	if len(next) < MinPasswordLength {
		return domain.NewValidationError("newPassword", "must be at least 4 characters", nil)
	}

	hash, err := s.passwordHash(ctx)
	if err != nil {
		return err
	}
	if err := s.passwords.Compare(hash, current); err != nil {
		return ErrWrongPassword
	}

	newHash, err := s.passwords.Hash(next)
	if err != nil {
		return err
	}
	if err := s.settings.Set(ctx, store.SettingAdminPasswordHash, newHash); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("admin password changed")
	return nil
}
