package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crestfin/admin-console/internal/core/domain"
)

func sessionContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionBind_SetsCookieAndStoresToken(t *testing.T) {
	sessions := &stubSessions{}
	h := NewSessionHandler(sessions, "sid", 24*time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"token":"tok-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := sessionContext(t, req)

	if err := h.Bind(c); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if !sessions.bound || sessions.token != "tok-1" {
		t.Fatalf("token not stored: %+v", sessions)
	}

	cookie := responseCookie(t, rec, "sid")
	if cookie.Value == "" {
		t.Fatalf("empty session id")
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v", cookie.SameSite)
	}
}

func TestSessionBind_RejectsMissingToken(t *testing.T) {
	h := NewSessionHandler(&stubSessions{}, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := sessionContext(t, req)

	err := h.Bind(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, want 422", httpErr.Code)
	}
}

func TestSessionStatus_NoCookieIsNotAuthenticated(t *testing.T) {
	h := NewSessionHandler(&stubSessions{}, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	c, _ := sessionContext(t, req)

	if err := h.Status(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestSessionStatus_UnknownSessionIsNotAuthenticated(t *testing.T) {
	h := NewSessionHandler(&stubSessions{}, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sess-gone"})
	c, _ := sessionContext(t, req)

	if err := h.Status(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestSessionStatus_BoundSessionIsActive(t *testing.T) {
	sessions := &stubSessions{token: "tok-1", bound: true}
	h := NewSessionHandler(sessions, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sess-1"})
	c, rec := sessionContext(t, req)

	if err := h.Status(c); err != nil {
		t.Fatalf("Status: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"active":true`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestSessionUnbind_DropsBindingAndExpiresCookie(t *testing.T) {
	sessions := &stubSessions{token: "tok-1", bound: true}
	h := NewSessionHandler(sessions, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sess-1"})
	c, rec := sessionContext(t, req)

	if err := h.Unbind(c); err != nil {
		t.Fatalf("Unbind: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(sessions.unbindCalls) != 1 || sessions.unbindCalls[0] != "sess-1" {
		t.Fatalf("binding not dropped: %v", sessions.unbindCalls)
	}

	cookie := responseCookie(t, rec, "sid")
	if cookie.MaxAge >= 0 {
		t.Fatalf("cookie not expired: MaxAge=%d", cookie.MaxAge)
	}
}

func TestSessionUnbind_NoCookieStillSucceeds(t *testing.T) {
	sessions := &stubSessions{}
	h := NewSessionHandler(sessions, "sid", time.Hour, false)

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	c, rec := sessionContext(t, req)

	if err := h.Unbind(c); err != nil {
		t.Fatalf("Unbind: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(sessions.unbindCalls) != 0 {
		t.Fatalf("unexpected unbind calls: %v", sessions.unbindCalls)
	}
}
