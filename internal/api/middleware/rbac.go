package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/api/metrics"
	"github.com/homebase/household-api/internal/core/domain"
)

// RBAC enforces role-based access control. It runs after Auth; a request
// without an identity or with a role outside allowedRoles is refused.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: "authentication required", Internal: domain.ErrAuthMissing}
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
