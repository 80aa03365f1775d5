package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crestfin/admin-console/internal/api/metrics"
)

// SessionCredentials is the slice of the gateway credential store the proxy
// depends on.
type SessionCredentials interface {
	Token(ctx context.Context, sessionID string) (string, bool, error)
	Unbind(ctx context.Context, sessionID string) error
}

// hopByHopHeaders are connection-scoped and must not be forwarded either way.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ProxyHandler forwards /api/admin/* requests to the real backend,
// preserving method, body, query, and cookies, and passing the upstream
// status and headers back verbatim. When the request carries a known session
// cookie, the bound bearer token is attached to the forwarded request; an
// upstream 401 revokes the binding.
type ProxyHandler struct {
	backend    *url.URL
	httpClient *http.Client
	sessions   SessionCredentials
	cookieName string
	log        zerolog.Logger
}

// NewProxy builds a ProxyHandler targeting backendBaseURL.
func NewProxy(backendBaseURL string, sessions SessionCredentials, cookieName string, timeout time.Duration, log zerolog.Logger) (*ProxyHandler, error) {
	backend, err := url.Parse(backendBaseURL)
	if err != nil {
		return nil, fmt.Errorf("proxy: invalid backend url: %w", err)
	}
	return &ProxyHandler{
		backend:    backend,
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		cookieName: cookieName,
		log:        log,
	}, nil
}

// Forward handles ANY /api/admin/*.
func (h *ProxyHandler) Forward(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()

	target := *h.backend
	target.Path = strings.TrimSuffix(h.backend.Path, "/") + "/" + strings.TrimPrefix(c.Param("*"), "/")
	target.RawQuery = req.URL.RawQuery

	out, err := http.NewRequestWithContext(ctx, req.Method, target.String(), req.Body)
	if err != nil {
		metrics.ProxyRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "cannot build upstream request")
	}
	copyHeaders(out.Header, req.Header)

	// Translate the session cookie into the bound bearer credential.
	sessionID := h.sessionID(req)
	if sessionID != "" && out.Header.Get("Authorization") == "" {
		token, ok, err := h.sessions.Token(ctx, sessionID)
		if err != nil {
			h.log.Error().Err(err).Msg("session lookup failed, forwarding without credential")
		} else if ok {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := h.httpClient.Do(out)
	if err != nil {
		metrics.ProxyRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		h.log.Warn().Err(err).Str("path", req.URL.Path).Msg("backend unreachable")
		return echo.NewHTTPError(http.StatusBadGateway, "backend unreachable")
	}
	defer resp.Body.Close()

	// An upstream 401 means the bound credential is dead; drop the binding
	// so the next request comes back unauthenticated.
	if resp.StatusCode == http.StatusUnauthorized && sessionID != "" {
		if err := h.sessions.Unbind(ctx, sessionID); err != nil {
			h.log.Error().Err(err).Msg("failed to revoke session binding")
		} else {
			metrics.SessionBindingsTotal.WithLabelValues("revoked").Inc()
		}
	}

	metrics.ProxyRequestsTotal.WithLabelValues(req.Method, statusClass(resp.StatusCode)).Inc()

	res := c.Response()
	copyHeaders(res.Header(), resp.Header)
	res.WriteHeader(resp.StatusCode)
	_, err = io.Copy(res.Writer, resp.Body)
	return err
}

func (h *ProxyHandler) sessionID(req *http.Request) string {
	cookie, err := req.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if isHopByHop(key) {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func isHopByHop(key string) bool {
	for _, h := range hopByHopHeaders {
		if strings.EqualFold(key, h) {
			return true
		}
	}
	return false
}

func statusClass(status int) string {
	switch {
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
