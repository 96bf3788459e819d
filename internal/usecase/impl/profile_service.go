package impl

import (
	"context"
	"log/slog"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	resolver    usecase.ResolverUsecase
	profileRepo repository.ProfileRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Resolver    usecase.ResolverUsecase
	ProfileRepo repository.ProfileRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		resolver:    params.Resolver,
		profileRepo: params.ProfileRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile runs a full synchronous resolution for the caller. The listener
// usually has a snapshot already; this path covers cold reads and repairs
// anything the snapshot run could not.
func (srv *profileService) GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.resolver.Resolve(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "profile resolution failed")
	}
	if profile == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile could not be resolved")
	}

	return profile, nil
}

// ReferralQR renders the caller's referral link as a PNG image.
func (srv *profileService) ReferralQR(ctx context.Context, identityID uuid.UUID) ([]byte, error) {
	profile, err := srv.profileRepo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "referral qr failed")
		}

		return nil, errors.Wrap(err, "failed to load profile for referral qr")
	}

	png, err := srv.qrService.GenerateReferralQR(profile.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate referral QR",
			slog.String("username", profile.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate referral qr")
	}

	return png, nil
}
