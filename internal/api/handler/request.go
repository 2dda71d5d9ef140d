package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

// ImageStore persists uploaded images and returns their public path.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// errorResponse documents the envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// messageResponse is returned by operations that have no resource to echo back.
type messageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: "invalid payload", Internal: domain.ErrValidation}
	}
	if err := c.Validate(req); err != nil {
		return &echo.HTTPError{Code: http.StatusBadRequest, Message: err.Error(), Internal: domain.ErrValidation}
	}
	return nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formValue returns the first value of a multipart field, or nil when the
// field was not sent.
func formValue(c echo.Context, name string) *string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	vs, ok := params[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

// saveImage stores the optional "image" file of a multipart request. It
// returns "" when the request carries no file.
func saveImage(c echo.Context, images ImageStore) (string, error) {
	if images == nil || !isMultipart(c) {
		return "", nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", &echo.HTTPError{Code: http.StatusBadRequest, Message: "invalid image upload", Internal: domain.ErrValidation}
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return images.Save(c.Request().Context(), fh.Filename, f)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano}

// parseDate accepts a calendar date or an RFC 3339 timestamp and returns UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
