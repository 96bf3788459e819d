package handler

import (
	"time"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// identityView is the client-facing subset of an Identity. Credential and
// confirmation-token fields never leave the service.
type identityView struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	EmailConfirmed bool       `json:"email_confirmed"`
	LastSignInAt   *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func newIdentityView(identity *entity.Identity) *identityView {
	if identity == nil {
		return nil
	}

	return &identityView{
		ID:             identity.ID,
		Email:          identity.Email,
		Phone:          identity.Phone,
		EmailConfirmed: identity.EmailConfirmed(),
		LastSignInAt:   identity.LastSignInAt,
		CreatedAt:      identity.CreatedAt,
	}
}

// profileView is the client-facing shape of a resolved Profile.
type profileView struct {
	ID                   uuid.UUID  `json:"id"`
	TenantID             uuid.UUID  `json:"tenant_id"`
	Role                 string     `json:"role"`
	FullName             string     `json:"full_name,omitempty"`
	Email                string     `json:"email,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	Country              string     `json:"country,omitempty"`
	Username             string     `json:"username"`
	ReferredBy           *uuid.UUID `json:"referred_by,omitempty"`
	Onboarded            bool       `json:"onboarded"`
	PartnerEmailVerified bool       `json:"partner_email_verified,omitempty"`
	IsolationFailed      bool       `json:"isolation_failed,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func newProfileView(profile *entity.Profile) *profileView {
	if profile == nil {
		return nil
	}

	return &profileView{
		ID:                   profile.ID,
		TenantID:             profile.TenantID,
		Role:                 profile.Role.String(),
		FullName:             profile.FullName,
		Email:                profile.Email,
		Phone:                profile.Phone,
		Country:              profile.Country,
		Username:             profile.Username,
		ReferredBy:           profile.ReferredBy,
		Onboarded:            profile.Onboarded,
		PartnerEmailVerified: profile.PartnerEmailVerified,
		IsolationFailed:      profile.IsolationFailed,
		CreatedAt:            profile.CreatedAt,
	}
}

// universityView is the client-facing shape of a University record.
type universityView struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newUniversityView(university *entity.University) *universityView {
	if university == nil {
		return nil
	}

	return &universityView{
		ID:          university.ID,
		TenantID:    university.TenantID,
		Name:        university.Name,
		Country:     university.Country,
		City:        university.City,
		Website:     university.Website,
		LogoURL:     university.LogoURL,
		Description: university.Description,
		UpdatedAt:   university.UpdatedAt,
	}
}
