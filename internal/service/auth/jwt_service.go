package auth

import (
	"context"
	"time"
)

// RoleAdmin is the only role the service issues tokens for.
const RoleAdmin = "admin"

// JWTService issues and validates admin session tokens.
type JWTService interface {
	// GenerateToken creates a signed admin token.
	GenerateToken(ctx context.Context) (string, error)

	// ValidateToken checks signature, lifetime and role. It returns one of
	// the package's sentinel errors on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of an admin token.
type Claims struct {
	Role      string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
