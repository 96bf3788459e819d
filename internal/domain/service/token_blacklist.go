package service

import (
	"context"
	"time"
)

// TokenBlacklist revokes access tokens ahead of their natural expiry, so a
// logout takes effect immediately instead of when the token runs out.
type TokenBlacklist interface {
	// Revoke marks a token revoked for the given remaining lifetime.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether the token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
