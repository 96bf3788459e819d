package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "unigate/internal/delivery/context"
	"unigate/internal/delivery/http/response"
	"unigate/internal/domain/service"
	"unigate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer access tokens and puts the caller's
// identity and role claims on the request context.
type AuthMiddleware struct {
	tokenService service.TokenService
	blacklist    service.TokenBlacklist
	resolver     usecase.ResolverUsecase
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware. The blacklist may
// be nil when no Redis is configured.
func NewAuthMiddleware(tokenService service.TokenService, blacklist service.TokenBlacklist, resolver usecase.ResolverUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		blacklist:    blacklist,
		resolver:     resolver,
		logger:       logger,
	}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}

		if m.blacklist != nil {
			revoked, revokeErr := m.blacklist.IsRevoked(c.Request().Context(), tokenString)
			if revokeErr != nil {
				// Blacklist lookup failures fail open; a revoked token still
				// ages out at its expiry.
				m.logger.Warn("Token blacklist check failed", slog.Any("error", revokeErr))
			} else if revoked {
				return response.Unauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
			}
		}

		roles := claims.Roles
		if len(roles) == 0 {
			roles = m.lookupRoles(c, claims.IdentityID)
		}

		deliverycontext.SetIdentity(c, claims.IdentityID, roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles := deliverycontext.GetRoles(c)
			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Requires the '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// lookupRoles backfills role claims for tokens minted before the profile
// existed, such as the pair issued at signup. The lookup is bounded and
// degrades to an unprivileged request.
func (m *AuthMiddleware) lookupRoles(c echo.Context, identityID uuid.UUID) []string {
	if m.resolver == nil {
		return nil
	}

	role, err := m.resolver.LookupRole(c.Request().Context(), identityID)
	if err != nil {
		m.logger.Warn("Role lookup failed during authentication",
			slog.String("identityID", identityID.String()), slog.Any("error", err))

		return nil
	}
	if role == "" {
		return nil
	}

	return []string{role.String()}
}
