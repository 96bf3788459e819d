// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the profile-facing operations for the signed-in user.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile via a full synchronous
	// resolution. The HTTP layer serves the listener's snapshot when one
	// exists and falls back to this for cold reads.
	GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)

	// ReferralQR renders the caller's referral link as a PNG QR code.
	ReferralQR(ctx context.Context, identityID uuid.UUID) ([]byte, error)
}
