package service

import (
	"context"

	"unigate/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, etc.)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthVerifier defines the interface for OAuth ID-token verification.
// This is used for Google Sign-In where the client sends an ID token directly.
type OAuthVerifier interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// Provider returns the OAuth provider type this verifier handles
	Provider() entity.ProviderType
}
