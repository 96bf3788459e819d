package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetIdentity stores the authenticated identity's id and role claims on the
// echo context. Called by the auth middleware after token validation.
func SetIdentity(c echo.Context, identityID uuid.UUID, roles []string) {
	c.Set(string(KeyIdentityID), identityID)
	c.Set(string(KeyRoles), roles)
}

// GetIdentityID extracts the authenticated identity's id from echo.Context.
// The boolean is false when the request was not authenticated.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyIdentityID)).(uuid.UUID)

	return id, ok
}

// GetRoles extracts the authenticated identity's role claims from
// echo.Context. Returns nil when the request was not authenticated or the
// token carried no roles.
func GetRoles(c echo.Context) []string {
	roles, ok := c.Get(string(KeyRoles)).([]string)
	if !ok {
		return nil
	}

	return roles
}
