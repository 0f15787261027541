package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ auth.JWTService              = (*MockJWTService)(nil)
	_ auth.PasswordVerifier        = (*MockPasswordVerifier)(nil)
	_ generation.TextGenerator     = (*MockTextGenerator)(nil)
	_ generation.SpeechSynthesizer = (*MockSpeechSynthesizer)(nil)
)

func TestMockJWTService_Defaults(t *testing.T) {
	m := &MockJWTService{Token: "tok"}

	token, err := m.GenerateToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	claims, err := m.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	m.ValidateErr = auth.ErrExpiredToken
	_, err = m.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestMockTextGenerator_RecordsCalls(t *testing.T) {
	m := &MockTextGenerator{Reply: "OK"}
	cfg := domain.ProviderConfig{Provider: domain.ProviderGroq, APIKey: "k"}

	out, err := m.Generate(context.Background(), cfg, "user", "system")
	require.NoError(t, err)
	assert.Equal(t, "OK", out)
	assert.Equal(t, 1, m.CallCount())

	gotCfg, prompt, system := m.LastCall()
	assert.Equal(t, cfg, gotCfg)
	assert.Equal(t, "user", prompt)
	assert.Equal(t, "system", system)
}

func TestMockPasswordVerifier(t *testing.T) {
	m := &MockPasswordVerifier{}
	assert.ErrorIs(t, m.Compare("h", "p"), ErrPasswordMismatch)
	assert.Equal(t, 1, m.CompareCallCount)

	hash, err := m.Hash("secret")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret", hash)

	m.HashErr = errors.New("cost too high")
	_, err = m.Hash("secret")
	assert.Error(t, err)
}
