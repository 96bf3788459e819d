// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the isolation boundary grouping profiles and, for partners, a
// University. Shared tenants host many non-partner profiles; an isolated
// tenant hosts at most one partner profile and at most one University.
type Tenant struct {
	ID        uuid.UUID // The unique identifier of the tenant.
	Slug      string    // Globally unique, URL-safe identifier.
	Name      string    // Display name of the organization.
	EmailFrom string    // Sender address used for tenant-scoped mail.
	Active    bool      // Inactive tenants reject new profile attachments.
	CreatedAt time.Time // Timestamp of when this tenant was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
