// Package identity exposes the identity store to the resolver core as a
// read-only directory.
package identity

import (
	"context"

	"unigate/internal/domain/entity"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"

	"github.com/google/uuid"
)

// directory narrows the identity repository to reads. The resolver never
// writes identities.
type directory struct {
	repo repository.IdentityRepository
}

// NewDirectory is the constructor for directory.
func NewDirectory(repo repository.IdentityRepository) service.IdentityDirectory {
	return &directory{repo: repo}
}

// GetIdentity retrieves an identity by id, with its signup metadata parsed.
func (d *directory) GetIdentity(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return d.repo.FindByID(ctx, id)
}
