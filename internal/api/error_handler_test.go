package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crestfin/admin-console/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v: %s", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadGateway, "backend unreachable"))
	if code != http.StatusBadGateway {
		t.Fatalf("code = %d", code)
	}
	if body.Error != "backend unreachable" {
		t.Fatalf("message = %q", body.Error)
	}
}

func TestErrorHandler_UnboundSession(t *testing.T) {
	code, body := renderError(t, domain.ErrNotAuthenticated)
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d", code)
	}
	if body.Error != "not authenticated" {
		t.Fatalf("message = %q", body.Error)
	}

	// Wrapped sentinels map the same way.
	code, _ = renderError(t, fmt.Errorf("session status: %w", domain.ErrNotAuthenticated))
	if code != http.StatusUnauthorized {
		t.Fatalf("wrapped sentinel code = %d", code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("redis exploded"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}
