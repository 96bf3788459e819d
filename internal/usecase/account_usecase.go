// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new identity.
type SignUpInput struct {
	Email    string
	Password string
	Metadata entity.SignupMetadata
}

// LoginInput defines the data required for a password sign-in.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	IdentityID   uuid.UUID
	AccessToken  string
	RefreshToken string
	AllDevices   bool
}

// --- Output DTOs ---

// AuthOutput returns the token pair and the identity after a successful
// authentication step.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Identity     *entity.Identity
}

// AccountUsecase defines the interface for identity lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp registers a new identity, issues a token pair and publishes the
	// signed_in session event. Profile resolution happens asynchronously.
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)

	// Login authenticates an identity by email and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// GoogleSignIn authenticates via a Google ID token, creating the identity
	// and provider link on first sign-in.
	GoogleSignIn(ctx context.Context, idToken string) (*AuthOutput, error)

	// RefreshToken rotates a refresh token into a fresh token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes the presented refresh session (or all of them), puts the
	// access token on the blacklist when one is configured, and publishes the
	// signed_out session event.
	Logout(ctx context.Context, input LogoutInput) error

	// VerifyEmail consumes an email-confirmation token and marks the identity
	// confirmed, publishing an identity_updated session event.
	VerifyEmail(ctx context.Context, token string) error

	// ResendVerification regenerates the confirmation token and resends the
	// verification mail for an unconfirmed identity.
	ResendVerification(ctx context.Context, email string) error
}
