package middleware

import (
	"context"
	"strings"

	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenBlacklist is the revocation check the auth middleware consults.
// Satisfied by core/cache.Cache.
type TokenBlacklist interface {
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Middleware bundles the route guards modules hang onto their routers.
type Middleware struct {
	blacklist TokenBlacklist
	base      controller.BaseController
}

func New(blacklist TokenBlacklist) *Middleware {
	return &Middleware{
		blacklist: blacklist,
		base:      controller.NewBaseController(),
	}
}

// AuthMiddleware authenticates a Bearer token and stores its claims on the
// context under constants.ContextTokenData. Authorization decisions stay in
// the services; this guard only establishes identity.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return m.base.Unauthorized(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				return m.base.Unauthorized(errors.ErrUnauthorized, "Invalid or expired token")
			}

			if m.blacklist != nil {
				revoked, err := m.blacklist.IsTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:BlacklistCheck:Error", "error", err)
					return m.base.InternalServerError(errors.ErrInternalServer, "Failed to verify token")
				}
				if revoked {
					return m.base.Unauthorized(errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the named roles. Used only for surfaces
// that are role-exclusive end to end (admin user management); business rules
// about who may approve what live in the services.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return m.base.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return m.base.Forbidden(errors.ErrForbidden, "Insufficient role")
			}
			return next(c)
		}
	}
}
