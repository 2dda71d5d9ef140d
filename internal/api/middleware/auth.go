package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/api/metrics"
	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

const identityKey = "identity"

type identityCtxKey struct{}

// Auth verifies the bearer token and attaches the caller's identity to both
// the echo context and the request context. Only the first Authorization
// header is considered.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: "missing authorization header", Internal: domain.ErrAuthMissing}
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: "invalid authorization header", Internal: domain.ErrTokenMalformed}
			}

			identity, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				reason, msg := "invalid", "invalid token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason, msg = "expired", "token expired"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: msg, Internal: err}
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity attaches identity to c and to its request context.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), identityCtxKey{}, identity)))
}

// IdentityFrom returns the identity attached by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// IdentityFromContext returns the identity attached by Auth to a request context.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(domain.Identity)
	return identity, ok
}
