package handler

import (
	"net/http"
	"testing"

	"unigate/internal/delivery/authstate"
	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/domain/entity"
	mockUsecase "unigate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_GetProfile_ServesWarmSnapshot(t *testing.T) {
	// No expectations on the usecase: a warm snapshot must not trigger a
	// synchronous resolution.
	uc := mockUsecase.NewMockProfileUsecase(t)
	store := authstate.NewStore()
	h := NewProfileHandler(uc, store, testLogger())

	identityID := uuid.New()
	store.Set(identityID, authstate.Snapshot{
		Identity: &entity.Identity{ID: identityID},
		Profile: &entity.Profile{
			ID:       identityID,
			TenantID: uuid.New(),
			Role:     entity.RoleStudent,
			Username: "user_cafe",
		},
	})

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/me/profile", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_cafe")
}

func TestProfileHandler_GetProfile_ColdIdentityResolvesSynchronously(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, authstate.NewStore(), testLogger())

	identityID := uuid.New()
	uc.EXPECT().GetProfile(mock.Anything, identityID).Return(&entity.Profile{
		ID:       identityID,
		TenantID: uuid.New(),
		Role:     entity.RoleStudent,
		Username: "user_cold",
	}, nil)

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/me/profile", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_cold")
}

func TestProfileHandler_GetProfile_SkipsSnapshotStillLoading(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	store := authstate.NewStore()
	h := NewProfileHandler(uc, store, testLogger())

	identityID := uuid.New()
	store.Set(identityID, authstate.Snapshot{
		Identity:       &entity.Identity{ID: identityID},
		Loading:        true,
		ProfileLoading: true,
	})

	uc.EXPECT().GetProfile(mock.Anything, identityID).Return(&entity.Profile{
		ID:       identityID,
		TenantID: uuid.New(),
		Role:     entity.RoleStudent,
		Username: "user_fresh",
	}, nil)

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/me/profile", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_fresh")
}

func TestProfileHandler_ReferralQR_WritesPNG(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, authstate.NewStore(), testLogger())

	identityID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	uc.EXPECT().ReferralQR(mock.Anything, identityID).Return(png, nil)

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/me/referral-qr", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.ReferralQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
