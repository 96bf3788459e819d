// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUniversityNotFound is returned when no university record matches the lookup.
var ErrUniversityNotFound = errors.New("university not found")

// UniversityRepository defines the standard operations for university persistence.
type UniversityRepository interface {
	// FindByTenantID retrieves the university owned by a tenant.
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*entity.University, error)

	// Create persists a new university record.
	Create(ctx context.Context, university *entity.University) error

	// GetOrCreateByTenant resolves the tenant's university, creating the given
	// record atomically when absent. The per-tenant uniqueness constraint makes
	// this safe under concurrent repair and audit runs.
	GetOrCreateByTenant(ctx context.Context, university *entity.University) (*entity.University, error)

	// Update modifies an existing university record.
	Update(ctx context.Context, university *entity.University) error
}
