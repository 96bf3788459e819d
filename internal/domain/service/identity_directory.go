package service

import (
	"context"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityDirectory is the resolver core's read-only view of the identity
// store. The resolver must never mutate identities; account flows own writes.
type IdentityDirectory interface {
	// GetIdentity retrieves an identity by id, with its signup metadata parsed.
	GetIdentity(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
}
