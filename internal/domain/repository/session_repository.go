// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for refresh-session persistence.
var (
	// ErrSessionNotFound is returned when a refresh session is not found.
	ErrSessionNotFound = errors.New("refresh session not found")
	// ErrSessionExpired is returned when a refresh session has expired.
	ErrSessionExpired = errors.New("refresh session has expired")
)

// SessionRepository defines the interface for refresh-session management.
// This supports multi-device login, rotation, and remote logout.
type SessionRepository interface {
	// CreateSession persists a new refresh session.
	CreateSession(ctx context.Context, session *entity.RefreshSession) error

	// FindSessionByHash retrieves a session by the stored hash of its refresh token.
	FindSessionByHash(ctx context.Context, tokenHash string) (*entity.RefreshSession, error)

	// FindSessionsByIdentityID retrieves all sessions for an identity.
	FindSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) ([]*entity.RefreshSession, error)

	// RevokeSession marks a session revoked without deleting the row, keeping
	// an audit trail of ended sessions until the janitor purges them.
	RevokeSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionByHash deletes a session by token hash, ending it immediately.
	DeleteSessionByHash(ctx context.Context, tokenHash string) error

	// DeleteSessionsByIdentityID removes all sessions for an identity.
	// This is the "logout from all devices" path.
	DeleteSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) error

	// DeleteExpiredSessions removes expired and revoked sessions, returning
	// the number of rows purged. Called periodically by the janitor.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// CountActiveSessionsByIdentityID returns the number of live sessions for
	// an identity, used to enforce the session limit.
	CountActiveSessionsByIdentityID(ctx context.Context, identityID uuid.UUID) (int, error)
}
