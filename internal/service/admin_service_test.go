package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/phrazzld/nani-api/internal/config"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/mocks"
	"github.com/phrazzld/nani-api/internal/service/auth"
	"github.com/phrazzld/nani-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminService(t *testing.T, settings store.SettingsStore) (AdminService, auth.JWTService) {
	t.Helper()
	jwtSvc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	svc, err := NewAdminService(settings, jwtSvc, auth.NewBcryptVerifierWithCost(bcrypt.MinCost), "nani2026", slog.Default())
	require.NoError(t, err)
	return svc, jwtSvc
}

func TestAdminService_LoginSeedsDefault(t *testing.T) {
	settings := newFakeSettings()
	svc, jwtSvc := newAdminService(t, settings)
	ctx := context.Background()

	token, err := svc.Login(ctx, "nani2026")
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	assert.NotEqual(t, "nani2026", settings.values[store.SettingAdminPasswordHash])
	assert.Equal(t, 1, settings.sets)

	_, err = svc.Login(ctx, "nani2026")
	require.NoError(t, err)
	assert.Equal(t, 1, settings.sets, "hash is seeded only once")
}

func TestAdminService_LoginFailures(t *testing.T) {
	svc, _ := newAdminService(t, newFakeSettings())

	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_LoginStoreError(t *testing.T) {
	settings := newFakeSettings()
	settings.getErr = errors.New("connection refused")
	svc, _ := newAdminService(t, settings)

	_, err := svc.Login(context.Background(), "nani2026")
	assert.EqualError(t, err, "connection refused")
}

func TestAdminService_ChangePassword(t *testing.T) {
	svc, _ := newAdminService(t, newFakeSettings())
	ctx := context.Background()

	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{"missing fields", "", "abcd", domain.ErrValidation},
		{"too short", "nani2026", "abc", domain.ErrValidation},
		{"wrong current", "nope", "abcd", ErrWrongPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.ChangePassword(ctx, tt.current, tt.next), tt.wantErr)
		})
	}

	require.NoError(t, svc.ChangePassword(ctx, "nani2026", "abcd"))
	_, err := svc.Login(ctx, "nani2026")
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = svc.Login(ctx, "abcd")
	assert.NoError(t, err)
}

func TestAdminService_WithMockCollaborators(t *testing.T) {
	settings := newFakeSettings()
	passwords := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	jwtSvc := &mocks.MockJWTService{Token: "signed"}
	svc, err := NewAdminService(settings, jwtSvc, passwords, "nani2026", slog.Default())
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.Login(ctx, "nani2026")
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	assert.Equal(t, []string{"nani2026"}, passwords.Hashed)
	assert.Equal(t, "hashed:nani2026", passwords.CompareCalledWith.HashedPassword)

	jwtSvc.Err = errors.New("signing failed")
	_, err = svc.Login(ctx, "nani2026")
	assert.Error(t, err)

	passwords.HashErr = errors.New("cost too high")
	assert.Error(t, svc.ChangePassword(ctx, "nani2026", "abcd"))
	assert.Equal(t, "hashed:nani2026", settings.values[store.SettingAdminPasswordHash])
}

func TestSubjectService(t *testing.T) {
	subjects := &fakeSubjects{}
	svc, err := NewSubjectService(subjects, slog.Default())
	require.NoError(t, err)
	ctx := context.Background()

	sub, err := svc.Create(ctx, "  生活  ")
	require.NoError(t, err)
	assert.Equal(t, "生活", sub.Name)
	assert.Equal(t, []string{"生活"}, subjects.created)

	_, err = svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.ErrorIs(t, svc.Delete(ctx, 0), domain.ErrValidation)

	subjects.err = store.ErrSubjectExists
	_, err = svc.Create(ctx, "國語")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAPIKeyService_Check(t *testing.T) {
	cfg := domain.ProviderConfig{Provider: domain.ProviderGroq, APIKey: "gsk_test", Model: "llama-3.1-8b-instant"}
	vendorErr := &domain.ProviderCallError{Provider: domain.ProviderGroq, StatusCode: 401, Message: "invalid key"}

	tests := []struct {
		name    string
		cfg     domain.ProviderConfig
		reply   string
		err     error
		wantErr error
		calls   int
	}{
		{"ok", cfg, "OK", nil, nil, 1},
		{"empty reply", cfg, "  ", nil, ErrInvalidAPIKey, 1},
		{"vendor rejects", cfg, "", vendorErr, vendorErr, 1},
		{"missing key", domain.ProviderConfig{Provider: domain.ProviderGroq}, "", nil, domain.ErrMissingAPIKey, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := &mocks.MockTextGenerator{Reply: tt.reply, Err: tt.err}
			svc, err := NewAPIKeyService(text)
			require.NoError(t, err)

			err = svc.Check(context.Background(), tt.cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.calls, text.CallCount())
			if tt.calls > 0 {
				_, prompt, _ := text.LastCall()
				assert.Contains(t, prompt, "OK")
			}
		})
	}
}
