package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/domain/entity"
	"unigate/internal/domain/service"
	mockSvc "unigate/internal/mocks/service"
	mockUsecase "unigate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func passthrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func accessClaims(identityID uuid.UUID, roles ...string) *service.Claims {
	return &service.Claims{
		IdentityID: identityID,
		Roles:      roles,
		Type:       "access",
	}
}

func TestAuthMiddleware_MissingHeaderAnswers401(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), nil, nil, testLogger())

	c, rec := newAuthContext("")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NonBearerHeaderAnswers401(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), nil, nil, testLogger())

	c, rec := newAuthContext("Basic dXNlcjpwYXNz")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token expired"))
	m := NewAuthMiddleware(tokens, nil, nil, testLogger())

	c, rec := newAuthContext("Bearer bad-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsRefreshTokenType(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		IdentityID: identityID,
		Type:       "refresh",
	}, nil)
	m := NewAuthMiddleware(tokens, nil, nil, testLogger())

	c, rec := newAuthContext("Bearer refresh-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentityAndRoles(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good-token").Return(accessClaims(identityID, "partner"), nil)
	m := NewAuthMiddleware(tokens, nil, nil, testLogger())

	c, rec := newAuthContext("Bearer good-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := deliverycontext.GetIdentityID(c)
	require.True(t, ok)
	assert.Equal(t, identityID, gotID)
	assert.Equal(t, []string{"partner"}, deliverycontext.GetRoles(c))
}

func TestAuthMiddleware_RevokedTokenAnswers401(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("revoked-token").Return(accessClaims(identityID, "student"), nil)
	blacklist := mockSvc.NewMockTokenBlacklist(t)
	blacklist.EXPECT().IsRevoked(mock.Anything, "revoked-token").Return(true, nil)
	m := NewAuthMiddleware(tokens, blacklist, nil, testLogger())

	c, rec := newAuthContext("Bearer revoked-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestAuthMiddleware_BlacklistFailureFailsOpen(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good-token").Return(accessClaims(identityID, "student"), nil)
	blacklist := mockSvc.NewMockTokenBlacklist(t)
	blacklist.EXPECT().IsRevoked(mock.Anything, "good-token").Return(false, errors.New("redis unreachable"))
	m := NewAuthMiddleware(tokens, blacklist, nil, testLogger())

	c, rec := newAuthContext("Bearer good-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_BackfillsRolesFromResolver(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("no-roles-token").Return(accessClaims(identityID), nil)
	resolver := mockUsecase.NewMockResolverUsecase(t)
	resolver.EXPECT().LookupRole(mock.Anything, identityID).Return(entity.RolePartner, nil)
	m := NewAuthMiddleware(tokens, nil, resolver, testLogger())

	c, _ := newAuthContext("Bearer no-roles-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.True(t, called)
	assert.Equal(t, []string{"partner"}, deliverycontext.GetRoles(c))
}

func TestAuthMiddleware_RoleLookupFailureDegradesToNoRoles(t *testing.T) {
	identityID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("no-roles-token").Return(accessClaims(identityID), nil)
	resolver := mockUsecase.NewMockResolverUsecase(t)
	resolver.EXPECT().LookupRole(mock.Anything, identityID).Return(entity.Role(""), errors.New("lookup failed"))
	m := NewAuthMiddleware(tokens, nil, resolver, testLogger())

	c, _ := newAuthContext("Bearer no-roles-token")
	var called bool
	require.NoError(t, m.Authenticate(passthrough(&called))(c))

	assert.True(t, called)
	assert.Empty(t, deliverycontext.GetRoles(c))
}

func TestAuthMiddleware_RequireRole_GrantsMatchingRole(t *testing.T) {
	m := &AuthMiddleware{logger: testLogger()}

	c, rec := newAuthContext("")
	deliverycontext.SetIdentity(c, uuid.New(), []string{"partner"})

	var called bool
	require.NoError(t, m.RequireRole("partner")(passthrough(&called))(c))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_RejectsMissingRole(t *testing.T) {
	m := &AuthMiddleware{logger: testLogger()}

	c, rec := newAuthContext("")
	deliverycontext.SetIdentity(c, uuid.New(), []string{"student"})

	var called bool
	require.NoError(t, m.RequireRole("partner")(passthrough(&called))(c))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}
