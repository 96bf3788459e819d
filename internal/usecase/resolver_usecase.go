// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolverUsecase turns an authenticated identity into its application
// Profile, repairing missing rows and enforcing tenant isolation on the way.
type ResolverUsecase interface {
	// Resolve fetches the profile for an identity. Missing or recoverably
	// broken profiles are repaired once and re-fetched once; unresolvable
	// states yield (nil, nil). The only error ever returned is a failed
	// partner tenant bootstrap, which must surface to the caller.
	Resolve(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)

	// LookupRole returns the profile's role, bounded by the configured
	// lookup timeout. A timeout or missing profile yields ("", nil) so
	// callers degrade to an unprivileged request instead of failing it.
	LookupRole(ctx context.Context, identityID uuid.UUID) (entity.Role, error)
}
