package mocks

import (
	"context"

	"github.com/phrazzld/nani-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults used when the function fields are nil. A nil Claims with a
	// nil ValidateErr validates as an admin.
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

func (m *MockJWTService) GenerateToken(ctx context.Context) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims == nil {
		return &auth.Claims{Role: auth.RoleAdmin, Subject: auth.RoleAdmin}, nil
	}
	return m.Claims, nil
}
