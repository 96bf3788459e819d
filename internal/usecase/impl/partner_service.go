package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logoExtensions maps the accepted logo content types to stored file
// extensions. Anything else is rejected before touching the bucket.
var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	profileRepo    repository.ProfileRepository
	universityRepo repository.UniversityRepository
	blobStore      service.BlobStore
	logger         *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	ProfileRepo    repository.ProfileRepository
	UniversityRepo repository.UniversityRepository
	BlobStore      service.BlobStore
	Logger         *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		profileRepo:    params.ProfileRepo,
		universityRepo: params.UniversityRepo,
		blobStore:      params.BlobStore,
		logger:         params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUniversity returns the University owned by the partner's tenant.
func (srv *partnerService) GetUniversity(ctx context.Context, identityID uuid.UUID) (*entity.University, error) {
	_, university, err := srv.loadPartnerUniversity(ctx, identityID)

	return university, err
}

// UpdateUniversity applies the non-nil descriptive fields and returns the
// updated record.
func (srv *partnerService) UpdateUniversity(ctx context.Context, identityID uuid.UUID, input *usecase.UpdateUniversityInput) (*entity.University, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty university update")
	}

	_, university, err := srv.loadPartnerUniversity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "university name cannot be empty")
		}
		university.Name = name
	}
	if input.Country != nil {
		university.Country = strings.TrimSpace(*input.Country)
	}
	if input.City != nil {
		university.City = strings.TrimSpace(*input.City)
	}
	if input.Website != nil {
		university.Website = strings.TrimSpace(*input.Website)
	}
	if input.Description != nil {
		if desc := strings.TrimSpace(*input.Description); desc == "" {
			university.Description = nil
		} else {
			university.Description = &desc
		}
	}

	if err := srv.universityRepo.Update(ctx, university); err != nil {
		return nil, errors.Wrap(err, "failed to update university")
	}

	srv.log(ctx).Info("University updated",
		slog.String("universityID", university.ID.String()),
		slog.String("tenantID", university.TenantID.String()))

	return university, nil
}

// UploadLogo stores the image in the media bucket and persists its public URL
// on the University record. The previous logo object is removed best-effort
// once the new URL is saved.
func (srv *partnerService) UploadLogo(ctx context.Context, identityID uuid.UUID, input *usecase.UploadLogoInput) (*entity.University, error) {
	if srv.blobStore == nil {
		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "logo upload failed")
	}
	if input == nil || input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing logo content")
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported logo content type %q", contentType)
	}

	_, university, err := srv.loadPartnerUniversity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logos/%s/%s%s", university.TenantID, randomObjectName(), ext)
	url, err := srv.blobStore.Upload(ctx, key, contentType, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload logo")
	}

	previousURL := university.LogoURL
	university.LogoURL = url
	if err := srv.universityRepo.Update(ctx, university); err != nil {
		// The DB still points at the old logo, so remove the new object
		// instead of the old one.
		if delErr := srv.blobStore.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove unreferenced logo object",
				slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to persist logo url")
	}

	srv.deletePreviousLogo(ctx, previousURL)

	srv.log(ctx).Info("University logo uploaded",
		slog.String("universityID", university.ID.String()), slog.String("url", url))

	return university, nil
}

// loadPartnerUniversity resolves the caller's profile, checks the partner
// role, and loads the tenant's University record.
func (srv *partnerService) loadPartnerUniversity(ctx context.Context, identityID uuid.UUID) (*entity.Profile, *entity.University, error) {
	profile, err := srv.profileRepo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrProfileNotFound, "partner lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to load profile")
	}

	if !profile.IsPartner() {
		return nil, nil, errors.Wrap(domainerrors.ErrForbidden, "university management requires the partner role")
	}
	if profile.TenantID == uuid.Nil {
		return nil, nil, errors.Wrap(domainerrors.ErrUniversityNotFound, "partner profile has no tenant")
	}

	university, err := srv.universityRepo.FindByTenantID(ctx, profile.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrUniversityNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrUniversityNotFound, "partner lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to load university")
	}

	return profile, university, nil
}

// deletePreviousLogo removes a replaced logo object, recovering its bucket
// key from the stored public URL. Failures only cost bucket space.
func (srv *partnerService) deletePreviousLogo(ctx context.Context, previousURL string) {
	if previousURL == "" {
		return
	}

	idx := strings.Index(previousURL, "/logos/")
	if idx < 0 {
		return
	}

	key := previousURL[idx+1:]
	if err := srv.blobStore.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete previous logo object",
			slog.String("key", key), slog.Any("error", err))
	}
}

// randomObjectName returns a fresh collision-free object name segment.
func randomObjectName() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
