package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homebase/household-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorKind maps a domain error to its HTTP status and stable code. An empty
// message renders the error's own text.
type errorKind struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: more specific errors come before the kinds they wrap.
var errorKinds = []errorKind{
	{domain.ErrAuthMissing, http.StatusUnauthorized, "AUTH_MISSING", "authentication required"},
	{domain.ErrTokenExpired, http.StatusUnauthorized, "AUTH_INVALID", "token expired"},
	{domain.ErrAuthInvalid, http.StatusUnauthorized, "AUTH_INVALID", "invalid token"},
	{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED", ""},
	{domain.ErrEmailInUse, http.StatusConflict, "CONFLICT", "email already in use"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT", "conflict"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND_OR_FORBIDDEN", "resource not found or not authorized"},
	{domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "user not found"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"},
	{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "too many failed login attempts, try again later"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and a stable code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "code": "<CODE>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.) and handler
	// overrides that carry a domain kind in Internal.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := statusCode(he.Code)
		if he.Internal != nil {
			if k, ok := classify(he.Internal); ok {
				code = k.code
			}
		}
		if he.Code >= http.StatusInternalServerError {
			logUnexpected(log, c, err)
		}
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: code}
	}

	if k, ok := classify(err); ok {
		msg := k.message
		if msg == "" {
			msg = err.Error()
		}
		return k.status, errorResponse{Error: msg, Code: k.code}
	}

	// Unexpected error: log the real cause, return a generic message.
	logUnexpected(log, c, err)
	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "INTERNAL"}
}

func classify(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k, true
		}
	}
	return errorKind{}, false
}

// statusCode derives a code such as NOT_FOUND from an HTTP status.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func logUnexpected(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
