package handler

import (
	"log/slog"
	"net/http"

	"unigate/internal/delivery/authstate"
	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/delivery/http/response"
	"unigate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	store  *authstate.Store
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, store *authstate.Store, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		store:  store,
		logger: logger,
	}
}

// GetProfile returns the caller's profile. The listener's snapshot serves
// warm reads; a cold or still-resolving identity falls back to a synchronous
// resolution.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	if snap, found := h.store.Get(identityID); found && snap.Profile != nil && !snap.ProfileLoading {
		return response.Success(c, http.StatusOK, newProfileView(snap.Profile), "Profile retrieved")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProfileView(profile), "Profile retrieved")
}

// ReferralQR renders the caller's referral link as a PNG image.
func (h *ProfileHandler) ReferralQR(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	png, err := h.uc.ReferralQR(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
