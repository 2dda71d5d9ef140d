package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := map[string]struct {
		checks map[string]Checker
		status int
		body   string
	}{
		"all healthy": {map[string]Checker{"mongodb": ok, "redis": ok}, http.StatusOK, "ok"},
		"redis down":  {map[string]Checker{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable, "degraded"},
	}

	for name, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

		if err := NewHealthDependenciesHandler(tc.checks).Readiness(c); err != nil {
			t.Fatalf("%s: handler error: %v", name, err)
		}
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", name, tc.status, rec.Code)
		}

		var resp readinessResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid json: %v", name, err)
		}
		if resp.Status != tc.body || len(resp.Dependencies) != 2 {
			t.Fatalf("%s: unexpected body: %+v", name, resp)
		}
	}
}
