package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/api/middleware"
	"github.com/homebase/household-api/internal/core/domain"
)

// ctxIdentity returns the identity attached by the Auth middleware. Its
// absence means the route was mounted without the gate.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, domain.ErrAuthMissing
	}
	return identity, nil
}
