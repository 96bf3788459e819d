// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID, including any
	// linked student or agent record.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves a single profile by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// UsernameExists reports whether any profile holds the username, case-insensitively.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// GetRole retrieves only the role column for a profile. Kept narrow so the
	// bounded role lookup stays cheap.
	GetRole(ctx context.Context, id uuid.UUID) (entity.Role, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// UpdateTenant moves a profile onto another tenant without touching other columns.
	UpdateTenant(ctx context.Context, id, tenantID uuid.UUID) error

	// CountPartnersOnTenant counts partner-role profiles on a tenant,
	// excluding the given profile id.
	CountPartnersOnTenant(ctx context.Context, tenantID, excludeProfileID uuid.UUID) (int64, error)
}
