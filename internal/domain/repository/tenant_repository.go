// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrTenantNotFound is returned when no tenant matches the lookup.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantSlugTaken is returned when a tenant insert collides on the slug.
	ErrTenantSlugTaken = errors.New("tenant slug already taken")
)

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindBySlug retrieves a single tenant by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Tenant, error)

	// Create persists a new tenant. A slug collision surfaces as ErrTenantSlugTaken.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// GetOrCreateBySlug resolves a tenant by slug, creating it atomically when
	// absent. Used for the shared default tenant so concurrent signups cannot
	// mint duplicates.
	GetOrCreateBySlug(ctx context.Context, tenant *entity.Tenant) (*entity.Tenant, error)
}
