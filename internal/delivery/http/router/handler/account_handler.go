// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"unigate/internal/delivery/authstate"
	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/delivery/http/response"
	"unigate/internal/domain/entity"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for authentication and session handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	store  *authstate.Store
	bus    service.SessionEventBus
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, store *authstate.Store, bus service.SessionEventBus, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

type signUpRequest struct {
	Email    string                `json:"email" validate:"required,email"`
	Password string                `json:"password" validate:"required,min=8"`
	Metadata entity.SignupMetadata `json:"metadata"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
	AllDevices   bool   `json:"all_devices"`
}

type resendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// authResponse carries a token pair plus the safe identity view.
type authResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Identity     *identityView `json:"identity,omitempty"`
}

func newAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Identity:     newIdentityView(output.Identity),
	}
}

// authStateResponse mirrors the session listener's snapshot for one identity.
type authStateResponse struct {
	SignedIn       bool          `json:"signed_in"`
	Loading        bool          `json:"loading"`
	ProfileLoading bool          `json:"profile_loading"`
	Identity       *identityView `json:"identity,omitempty"`
	Profile        *profileView  `json:"profile,omitempty"`
}

// SignUp handles new account registration.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input signUpRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    input.Email,
		Password: input.Password,
		Metadata: input.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Signup successful")
}

// Login handles the password login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Login successful")
}

// GoogleSignIn handles authentication with a Google ID token.
func (h *AccountHandler) GoogleSignIn(c echo.Context) error {
	var input googleSignInRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), input.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Google sign-in successful")
}

// RefreshToken rotates a refresh token into a fresh pair.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Token refreshed successfully")
}

// Logout ends the caller's session. The body is optional; without a refresh
// token only the access token is revoked.
func (h *AccountHandler) Logout(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	var input logoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	err := h.uc.Logout(c.Request().Context(), usecase.LogoutInput{
		IdentityID:   identityID,
		AccessToken:  bearerToken(c),
		RefreshToken: input.RefreshToken,
		AllDevices:   input.AllDevices,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// VerifyEmail consumes the confirmation token from the mail link.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")

	if err := h.uc.VerifyEmail(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified successfully")
}

// ResendVerification requests a fresh confirmation mail. The response is the
// same whether or not the address is registered.
func (h *AccountHandler) ResendVerification(c echo.Context) error {
	var input resendVerificationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendVerification(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Accepted(c, "If the address is registered, a verification mail is on its way")
}

// AuthState returns the caller's current auth snapshot as maintained by the
// session listener.
func (h *AccountHandler) AuthState(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	snap, found := h.store.Get(identityID)
	state := authStateResponse{
		SignedIn:       found && snap.SignedIn(),
		Loading:        snap.Loading,
		ProfileLoading: snap.ProfileLoading,
		Identity:       newIdentityView(snap.Identity),
		Profile:        newProfileView(snap.Profile),
	}

	return response.Success(c, http.StatusOK, state, "Auth state retrieved")
}

// RefreshProfile forces the session listener to re-resolve the caller's
// profile, bypassing the already-resolved skip.
func (h *AccountHandler) RefreshProfile(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	err := h.bus.Publish(c.Request().Context(), service.SessionEvent{
		Kind:       service.SessionIdentityUpdated,
		IdentityID: identityID,
		Force:      true,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Accepted(c, "Profile refresh requested")
}

// bearerToken extracts the raw bearer token from the Authorization header,
// or returns empty when the header is absent or malformed.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return token
}
