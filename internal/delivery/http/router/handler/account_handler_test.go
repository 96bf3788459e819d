package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unigate/internal/delivery/authstate"
	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/delivery/http/validator"
	"unigate/internal/domain/entity"
	"unigate/internal/domain/service"
	mockSvc "unigate/internal/mocks/service"
	mockUsecase "unigate/internal/mocks/usecase"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEcho builds an echo instance with the app validator installed, matching
// the server setup.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_SignUp_CreatesIdentity(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	identityID := uuid.New()
	uc.EXPECT().SignUp(mock.Anything, mock.MatchedBy(func(in usecase.SignUpInput) bool {
		return in.Email == "jane@example.com" &&
			in.Password == "hunter2abc" &&
			in.Metadata.UniversityName == "Acme College"
	})).Return(&usecase.AuthOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Identity:     &entity.Identity{ID: identityID, Email: "jane@example.com"},
	}, nil)

	body := `{"email":"jane@example.com","password":"hunter2abc","metadata":{"role":"partner","university_name":"Acme College"}}`
	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/signup", body)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh-token"`)
	assert.Contains(t, rec.Body.String(), "jane@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_SignUp_RejectsInvalidPayload(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	body := `{"email":"not-an-email","password":"short"}`
	c, _ := newJSONContext(newEcho(), http.MethodPost, "/auth/signup", body)

	err := h.SignUp(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Login_MalformedBodyAnswers400(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/login", `{"email":`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Login_ReturnsTokenPair(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	identityID := uuid.New()
	uc.EXPECT().Login(mock.Anything, usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "hunter2abc",
	}).Return(&usecase.AuthOutput{
		AccessToken:  "at",
		RefreshToken: "rt",
		Identity:     &entity.Identity{ID: identityID, Email: "jane@example.com"},
	}, nil)

	body := `{"email":"jane@example.com","password":"hunter2abc"}`
	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"at"`)
}

func TestAccountHandler_VerifyEmail_PassesQueryToken(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	uc.EXPECT().VerifyEmail(mock.Anything, "tok123").Return(nil)

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/auth/verify-email?token=tok123", "")

	require.NoError(t, h.VerifyEmail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ResendVerification_AnswersAccepted(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	uc.EXPECT().ResendVerification(mock.Anything, "jane@example.com").Return(nil)

	body := `{"email":"jane@example.com"}`
	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/resend-verification", body)

	require.NoError(t, h.ResendVerification(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "If the address is registered")
}

func TestAccountHandler_Logout_ForwardsBearerAndBody(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	identityID := uuid.New()
	uc.EXPECT().Logout(mock.Anything, usecase.LogoutInput{
		IdentityID:   identityID,
		AccessToken:  "the-access-token",
		RefreshToken: "the-refresh",
		AllDevices:   true,
	}).Return(nil)

	body := `{"refresh_token":"the-refresh","all_devices":true}`
	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/logout", body)
	c.Request().Header.Set("Authorization", "Bearer the-access-token")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_AuthState_ServesListenerSnapshot(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	store := authstate.NewStore()
	h := NewAccountHandler(uc, store, nil, testLogger())

	identityID := uuid.New()
	store.Set(identityID, authstate.Snapshot{
		Identity: &entity.Identity{ID: identityID, Email: "jane@example.com"},
		Profile: &entity.Profile{
			ID:       identityID,
			TenantID: uuid.New(),
			Role:     entity.RoleStudent,
			Username: "user_cafe",
		},
	})

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/auth/state", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.AuthState(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"signed_in":true`)
	assert.Contains(t, rec.Body.String(), "user_cafe")
}

func TestAccountHandler_AuthState_WithoutIdentityAnswers401(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, authstate.NewStore(), nil, testLogger())

	c, rec := newJSONContext(newEcho(), http.MethodGet, "/auth/state", "")

	require.NoError(t, h.AuthState(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_RefreshProfile_PublishesForceEvent(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	bus := mockSvc.NewMockSessionEventBus(t)
	h := NewAccountHandler(uc, authstate.NewStore(), bus, testLogger())

	identityID := uuid.New()
	var published service.SessionEvent
	bus.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, event service.SessionEvent) error {
			published = event

			return nil
		})

	c, rec := newJSONContext(newEcho(), http.MethodPost, "/auth/refresh-profile", "")
	deliverycontext.SetIdentity(c, identityID, nil)

	require.NoError(t, h.RefreshProfile(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, service.SessionIdentityUpdated, published.Kind)
	assert.Equal(t, identityID, published.IdentityID)
	assert.True(t, published.Force)
}
