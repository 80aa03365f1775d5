package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crestfin/admin-console/internal/api/metrics"
	"github.com/crestfin/admin-console/internal/core/domain"
)

// SessionStore is the slice of the gateway credential store the session
// endpoints depend on.
type SessionStore interface {
	Bind(ctx context.Context, sessionID, token string) error
	Token(ctx context.Context, sessionID string) (string, bool, error)
	Unbind(ctx context.Context, sessionID string) error
}

// SessionHandler implements the login handshake: the front end exchanges a
// freshly obtained bearer token for an opaque session cookie, after which
// the proxy attaches the token on its behalf.
type SessionHandler struct {
	sessions   SessionStore
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionHandler(sessions SessionStore, cookieName string, ttl time.Duration, secure bool) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookieName: cookieName, ttl: ttl, secure: secure}
}

type bindSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

// Bind handles POST /session — binds a new session cookie to a bearer token.
func (h *SessionHandler) Bind(c echo.Context) error {
	var req bindSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sessionID := newSessionID()
	if err := h.sessions.Bind(c.Request().Context(), sessionID, req.Token); err != nil {
		return err
	}
	metrics.SessionBindingsTotal.WithLabelValues("bind").Inc()

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

type sessionStatusResponse struct {
	Active bool `json:"active"`
}

// Status handles GET /session — reports whether the caller's cookie is bound
// to a live credential. An absent or unknown session surfaces as
// domain.ErrNotAuthenticated, which the error handler renders as a 401.
func (h *SessionHandler) Status(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return domain.ErrNotAuthenticated
	}

	_, bound, err := h.sessions.Token(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	if !bound {
		return domain.ErrNotAuthenticated
	}
	return c.JSON(http.StatusOK, sessionStatusResponse{Active: true})
}

// Unbind handles DELETE /session — drops the binding and expires the cookie.
// Unbinding an unknown or absent session still succeeds: the client must
// always end up signed out.
func (h *SessionHandler) Unbind(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Unbind(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
		metrics.SessionBindingsTotal.WithLabelValues("unbind").Inc()
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("session id generation: %v", err))
	}
	return hex.EncodeToString(buf)
}
