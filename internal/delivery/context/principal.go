package context

import (
	"ledger/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal attaches the authenticated principal to the echo context.
// The value is request-scoped; it is discarded when the request ends.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal extracts the authenticated principal from the echo context.
// The second return value reports whether a principal was attached.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal)
	if !ok || principal == nil {
		return nil, false
	}

	return principal, true
}
