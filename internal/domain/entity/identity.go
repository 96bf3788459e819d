// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity represents an authenticated principal as issued by the auth
// subsystem. The resolver core treats identities as read-only input; only the
// account flows may create or mutate them.
type Identity struct {
	ID                 uuid.UUID       // The stable unique identifier, shared 1:1 with the Profile.
	Email              string          // Primary login email address.
	Phone              string          // Optional phone number captured at signup.
	PasswordHash       string          // Bcrypt hash of the password; empty for federated-only identities.
	EmailConfirmedAt   *time.Time      // Set once the email address has been verified; nil until then.
	ConfirmationToken  string          // Outstanding email-verification token; empty once consumed.
	ConfirmationSentAt *time.Time      // When the verification mail was last sent.
	LastSignInAt       *time.Time      // Timestamp of the most recent successful sign-in.
	Metadata           *SignupMetadata // Typed view of the signup metadata blob; never nil after parsing.
	CreatedAt          time.Time       // Timestamp of when this identity was created.
	UpdatedAt          time.Time       // Timestamp of the last modification.
}

// EmailConfirmed reports whether the identity's email address has been verified.
func (i *Identity) EmailConfirmed() bool {
	return i.EmailConfirmedAt != nil
}

// SignupMetadata is the typed form of the free-form metadata supplied at
// registration time. It is parsed and defaulted once, at the storage
// boundary; unknown fields are dropped there rather than inspected ad hoc
// by every consumer.
type SignupMetadata struct {
	Role           string     `json:"role,omitempty"`            // Requested role hint; normalized via naming.NormalizeRole.
	FullName       string     `json:"full_name,omitempty"`       // Display name supplied at signup.
	Email          string     `json:"email,omitempty"`           // Contact email, may differ from the login email.
	Phone          string     `json:"phone,omitempty"`           // Contact phone number.
	Country        string     `json:"country,omitempty"`         // Country of residence or of the organization.
	Username       string     `json:"username,omitempty"`        // Requested username; normalized before use.
	TenantID       *uuid.UUID `json:"tenant_id,omitempty"`       // Explicit tenant to join, when invited into one.
	TenantSlug     string     `json:"tenant_slug,omitempty"`     // Tenant slug hint, resolved before any creation.
	UniversityName string     `json:"university_name,omitempty"` // Partner signups: the organization's public name.
	ReferrerID     *uuid.UUID `json:"referrer_id,omitempty"`     // Explicit referrer profile id.
	ReferredBy     string     `json:"referred_by,omitempty"`     // Referrer username, resolved best-effort.
}

// RoleHint returns the raw role string from metadata, which may be empty or
// a legacy alias. Callers normalize it through the naming package.
func (m *SignupMetadata) RoleHint() string {
	if m == nil {
		return ""
	}

	return m.Role
}

// DisplayName returns the best available display name for the identity.
func (m *SignupMetadata) DisplayName(fallback string) string {
	if m != nil && m.FullName != "" {
		return m.FullName
	}

	return fallback
}

// HasTenantHint reports whether the metadata carries any tenant reference.
func (m *SignupMetadata) HasTenantHint() bool {
	return m != nil && (m.TenantID != nil || m.TenantSlug != "")
}
