package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"unigate/internal/domain/entity"
	domainerrors "unigate/internal/domain/errors"
	"unigate/internal/domain/repository"
	mockRepo "unigate/internal/mocks/repository"
	mockSvc "unigate/internal/mocks/service"
	mockUsecase "unigate/internal/mocks/usecase"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	resolver    *mockUsecase.MockResolverUsecase
	profileRepo *mockRepo.MockProfileRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	resolver := mockUsecase.NewMockResolverUsecase(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		Resolver:    resolver,
		ProfileRepo: profileRepo,
		QRService:   qrService,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		resolver:    resolver,
		profileRepo: profileRepo,
		qrService:   qrService,
	}
}

func TestProfileService_GetProfile_ReturnsResolvedProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, Username: "wanderer", Role: entity.RoleStudent}

	fx.resolver.EXPECT().Resolve(ctx, identityID).Return(profile, nil)

	got, err := fx.service.GetProfile(ctx, identityID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_GetProfile_UnresolvableYieldsNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.resolver.EXPECT().Resolve(ctx, identityID).Return(nil, nil)

	got, err := fx.service.GetProfile(ctx, identityID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Nil(t, got)
}

func TestProfileService_GetProfile_ResolutionErrorPropagates(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.resolver.EXPECT().
		Resolve(ctx, identityID).
		Return(nil, errors.Wrap(domainerrors.ErrTenantIsolationFailed, "profile repair failed"))

	got, err := fx.service.GetProfile(ctx, identityID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTenantIsolationFailed))
	assert.Nil(t, got)
}

func TestProfileService_ReferralQR_RendersImage(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, Username: "wanderer"}
	image := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil)
	fx.qrService.EXPECT().GenerateReferralQR("wanderer").Return(image, nil)

	got, err := fx.service.ReferralQR(ctx, identityID)

	require.NoError(t, err)
	assert.Equal(t, image, got)
}

func TestProfileService_ReferralQR_MissingProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(nil, repository.ErrProfileNotFound)

	got, err := fx.service.ReferralQR(ctx, identityID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Nil(t, got)
}

func TestProfileService_ReferralQR_GeneratorFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, Username: "wanderer"}

	fx.profileRepo.EXPECT().FindByID(ctx, identityID).Return(profile, nil)
	fx.qrService.EXPECT().
		GenerateReferralQR("wanderer").
		Return(nil, errors.New("content too long"))

	got, err := fx.service.ReferralQR(ctx, identityID)

	require.Error(t, err)
	assert.Nil(t, got)
}
