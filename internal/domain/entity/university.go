// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// University is a partner organization's public-facing record. At most one
// exists per isolated tenant. Repair creates it blank, with only
// signup-supplied contact fields populated.
type University struct {
	ID             uuid.UUID                 // The unique identifier of the university record.
	TenantID       uuid.UUID                 // The isolated tenant owning this record; unique per tenant.
	Name           string                    // Public name, from signup metadata or a generated placeholder.
	Country        string                    // Country, "Unknown" until the partner fills it in.
	City           string                    // City; empty until provided.
	Website        string                    // Public website URL; empty until provided.
	LogoURL        string                    // Logo location in the media bucket; empty until uploaded.
	Description    *string                   // Free-form description; nil until the partner writes one.
	ProfileDetails *UniversityProfileDetails // Structured public-profile blob; primary contact only at creation.
	CreatedAt      time.Time                 // Timestamp of when this record was created.
	UpdatedAt      time.Time                 // Timestamp of the last modification.
}

// UniversityProfileDetails is the structured profile blob stored alongside a
// University. Only PrimaryContact is populated at creation time.
type UniversityProfileDetails struct {
	Tagline        string             `json:"tagline,omitempty"`         // Short marketing line.
	Highlights     []string           `json:"highlights,omitempty"`      // Bullet-point selling points.
	PrimaryContact *UniversityContact `json:"primary_contact,omitempty"` // Signup contact person.
	SocialLinks    map[string]string  `json:"social_links,omitempty"`    // Platform name to URL.
	MediaURLs      []string           `json:"media_urls,omitempty"`      // Gallery images and videos.
}

// UniversityContact identifies the person who registered the organization.
type UniversityContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
