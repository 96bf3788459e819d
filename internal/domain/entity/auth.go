// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an external authentication provider.
type ProviderType string

const (
	// ProviderEmail indicates native email/password credentials.
	ProviderEmail ProviderType = "email"
	// ProviderGoogle indicates a Google account verified through Firebase.
	ProviderGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// FederatedIdentity links an external provider account to a local Identity.
// A Google sign-in is one record; the same person's email/password
// credentials live on the Identity itself.
type FederatedIdentity struct {
	ID             uuid.UUID    // The unique ID for this link record itself.
	IdentityID     uuid.UUID    // The local Identity this provider account maps to.
	Provider       ProviderType // The external provider, e.g. "google".
	ProviderUserID string       // The provider's stable subject id (e.g. Google's 'sub' claim).
	CreatedAt      time.Time    // Timestamp of when the provider account was linked.
}

// RefreshSession represents a long-lived, authorized session. It is used to
// obtain a new access token after the old one expires, without requiring
// credentials again.
type RefreshSession struct {
	ID         uuid.UUID // The unique ID for this session record.
	IdentityID uuid.UUID // The Identity this session belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token; the raw token is never stored.
	ExpiresAt  time.Time // When this session expires and becomes invalid.
	Revoked    bool      // Set on logout; revoked sessions cannot be refreshed.
	CreatedAt  time.Time // When the session was created (i.e. when the user signed in).
}

// Expired reports whether the session is past its expiry time.
func (s *RefreshSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionToken is the raw token material handed to a client after
// authentication and carried on auth-state snapshots.
type SessionToken struct {
	AccessToken  string    // Short-lived bearer token.
	RefreshToken string    // Long-lived rotation token; hashed at rest.
	ExpiresAt    time.Time // Expiry of the access token.
}
