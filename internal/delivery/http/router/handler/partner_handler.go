package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/delivery/http/response"
	"unigate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartnerHandler holds dependencies for partner-facing handlers.
type PartnerHandler struct {
	uc     usecase.PartnerUsecase
	logger *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetUniversity returns the University owned by the partner's tenant.
func (h *PartnerHandler) GetUniversity(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	university, err := h.uc.GetUniversity(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUniversityView(university), "University retrieved")
}

// UpdateUniversity applies the provided descriptive fields.
func (h *PartnerHandler) UpdateUniversity(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	var input usecase.UpdateUniversityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid university input")
	}

	university, err := h.uc.UpdateUniversity(c.Request().Context(), identityID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUniversityView(university), "University updated")
}

// UploadLogo accepts a multipart upload under the "logo" field and stores it
// as the University's logo.
func (h *PartnerHandler) UploadLogo(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing 'logo' form file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	university, err := h.uc.UploadLogo(c.Request().Context(), identityID, &usecase.UploadLogoInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUniversityView(university), "Logo uploaded")
}
