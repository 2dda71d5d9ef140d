package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(token string) (domain.Identity, error)
}

func (s stubVerifier) Verify(token string) (domain.Identity, error) {
	return s.verifyFn(token)
}

func acceptToken(want string, identity domain.Identity) stubVerifier {
	return stubVerifier{verifyFn: func(token string) (domain.Identity, error) {
		if token != want {
			return domain.Identity{}, domain.ErrTokenMalformed
		}
		return identity, nil
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	want := domain.Identity{UserID: "u1", Role: domain.RoleAdmin, Email: "jo@x.com"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(acceptToken("good", want))
	handler := mw(func(c echo.Context) error {
		called = true
		got, ok := IdentityFrom(c)
		if !ok || got != want {
			t.Fatalf("identity not set on echo context: %+v", got)
		}
		fromCtx, ok := IdentityFromContext(c.Request().Context())
		if !ok || fromCtx != want {
			t.Fatalf("identity not set on request context: %+v", fromCtx)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(acceptToken("good", domain.Identity{UserID: "u1"}))(func(c echo.Context) error {
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cases := map[string]struct {
		header string
		verify stubVerifier
		want   error
	}{
		"missing header": {
			verify: acceptToken("good", domain.Identity{}),
			want:   domain.ErrAuthMissing,
		},
		"wrong scheme": {
			header: "Token good",
			verify: acceptToken("good", domain.Identity{}),
			want:   domain.ErrAuthInvalid,
		},
		"empty token": {
			header: "Bearer ",
			verify: acceptToken("good", domain.Identity{}),
			want:   domain.ErrAuthInvalid,
		},
		"invalid token": {
			header: "Bearer not-a-token",
			verify: acceptToken("good", domain.Identity{}),
			want:   domain.ErrAuthInvalid,
		},
		"expired token": {
			header: "Bearer old",
			verify: stubVerifier{verifyFn: func(string) (domain.Identity, error) {
				return domain.Identity{}, domain.ErrTokenExpired
			}},
			want: domain.ErrTokenExpired,
		},
	}

	for name, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(tc.verify)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected *echo.HTTPError, got %T", name, err)
		}
		if he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, he.Code)
		}
		if !errors.Is(he.Internal, tc.want) {
			t.Fatalf("%s: expected internal %v, got %v", name, tc.want, he.Internal)
		}

		e.HTTPErrorHandler(err, c)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}
