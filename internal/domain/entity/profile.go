// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-level user record, linked 1:1 to an Identity.
// Its ID always equals the owning Identity's ID; the resolver verifies that
// equality after every fetch and repair.
type Profile struct {
	ID                   uuid.UUID  // Equal to the owning Identity's ID, never generated independently.
	TenantID             uuid.UUID  // The tenant this profile belongs to.
	Role                 Role       // Normalized role; legacy aliases are resolved before a Profile exists.
	FullName             string     // Display name.
	Email                string     // Contact email.
	Phone                string     // Contact phone number.
	Country              string     // Country, backfilled from signup metadata when missing.
	Username             string     // Unique, case-insensitive handle used for referral links.
	ReferredBy           *uuid.UUID // Referrer profile id; nil when the profile was not referred.
	Onboarded            bool       // Whether onboarding has completed; for partners this follows email verification.
	PartnerEmailVerified bool       // Partner-only flag derived from the identity's confirmed-email timestamp.
	Student              *Student   // Linked student record; nil unless Role is student.
	Agent                *Agent     // Linked agent record; nil unless Role is agent.
	CreatedAt            time.Time  // Timestamp of when this profile was created.
	UpdatedAt            time.Time  // Timestamp of the last modification.

	// IsolationFailed marks a partner profile that could not be migrated off a
	// shared tenant. It is never persisted; callers must surface it for
	// remediation instead of treating the profile as healthy.
	IsolationFailed bool
}

// IsPartner reports whether the profile carries the partner role.
func (p *Profile) IsPartner() bool {
	return p.Role == RolePartner
}

// BelongsTo reports whether the profile is owned by the given identity.
func (p *Profile) BelongsTo(identityID uuid.UUID) bool {
	return p.ID == identityID
}
