// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrFederatedIdentityNotFound is returned when no provider link matches the lookup.
	ErrFederatedIdentityNotFound = errors.New("federated identity not found")
)

// IdentityRepository defines the standard operations for identity persistence.
// Only the account flows may write identities; the resolver core reads them
// through the IdentityDirectory service port.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by its email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByConfirmationToken retrieves the identity holding the given email-verification token.
	FindByConfirmationToken(ctx context.Context, token string) (*entity.Identity, error)

	// Create persists a new identity.
	Create(ctx context.Context, identity *entity.Identity) error

	// Update modifies an existing identity.
	Update(ctx context.Context, identity *entity.Identity) error

	// FindFederated retrieves the provider link for an external subject.
	FindFederated(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.FederatedIdentity, error)

	// CreateFederated persists a new provider link.
	CreateFederated(ctx context.Context, federated *entity.FederatedIdentity) error
}
