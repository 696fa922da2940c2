// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
)

// bearerPrefix is the recognized Authorization scheme. Matching is
// case-sensitive; any other scheme counts as "no credential supplied".
const bearerPrefix = "Bearer "

// AuthMiddleware is the access gate: it turns a bearer token into a
// request-scoped principal. The gate itself never rejects a request;
// rejection is enforced by RequireAuth on protected route groups.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, identity usecase.IdentityUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, identity: identity, logger: logger}
}

// Authenticate validates the bearer token, resolves the principal and
// attaches it to the request context. Every failure path continues
// unauthenticated: a missing header, a foreign scheme, an invalid or
// expired token, or a subject that no longer matches a stored user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Expired and malformed tokens are indistinguishable downstream.
			m.logger.Debug("Token validation failed", slog.Any("error", err))

			return next(c)
		}

		principal, err := m.identity.Resolve(c.Request().Context(), claims.Subject)
		if err != nil {
			m.logger.Debug("Principal resolution failed", slog.String("subject", claims.Subject), slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireAuth is the route-level policy for protected routes: the request is
// rejected unless the gate attached a principal. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetPrincipal(c); !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		return next(c)
	}
}

// RequireCapability is a middleware factory that checks the principal's
// capability set. It must be used AFTER RequireAuth.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok || !principal.Can(capability) {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN",
					"Permission denied: require '"+string(capability)+"' capability", "")
			}

			return next(c)
		}
	}
}
