// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"unigate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateUniversityInput defines the editable descriptive fields of a
// partner's University record. Nil fields are left untouched.
type UpdateUniversityInput struct {
	Name        *string `json:"name,omitempty"`
	Country     *string `json:"country,omitempty"`
	City        *string `json:"city,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UploadLogoInput carries a logo image destined for the media bucket.
type UploadLogoInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// PartnerUsecase defines the operations available to partner-role users for
// managing their University record.
type PartnerUsecase interface {
	// GetUniversity returns the University owned by the partner's tenant.
	GetUniversity(ctx context.Context, identityID uuid.UUID) (*entity.University, error)

	// UpdateUniversity applies the non-nil descriptive fields and returns the
	// updated record.
	UpdateUniversity(ctx context.Context, identityID uuid.UUID, input *UpdateUniversityInput) (*entity.University, error)

	// UploadLogo stores the image in the media bucket and persists its public
	// URL on the University record.
	UploadLogo(ctx context.Context, identityID uuid.UUID, input *UploadLogoInput) (*entity.University, error)
}
