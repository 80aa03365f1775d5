// Package client implements the console's REST contract with the backend
// API: one thin client per resource family, a shared transport that attaches
// the session credential, and a single normalizer that converts every raw
// outcome into a uniform Result.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/crestfin/admin-console/internal/core/ports"
)

// DefaultTimeout bounds every request; timeouts surface as network failures.
const DefaultTimeout = 30 * time.Second

// Client is the configured transport for one backend resource family: fixed
// base URL, fixed timeout, credential attachment on every request.
type Client struct {
	baseURL  string
	resource string
	http     *http.Client
	creds    ports.CredentialStore
	log      zerolog.Logger

	// onUnauthorized fires once per 401 response that was sent with a
	// credential attached, receiving the token that was used. Requests sent
	// without a credential (login itself) never trigger it.
	onUnauthorized func(usedToken string)
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient swaps the underlying HTTP client (tests, custom transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedHook installs the forced-logout hook invoked on 401.
func WithUnauthorizedHook(fn func(usedToken string)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger attaches a logger; a disabled logger is used otherwise.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a transport for one resource family rooted at baseURL.
func New(baseURL, resource string, creds ports.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		resource: resource,
		http:     &http.Client{Timeout: DefaultTimeout},
		creds:    creds,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exchange captures the raw outcome of one HTTP round trip in exactly one of
// four shapes: a response (status+body), a network failure after sending, or
// a local failure before anything was transmitted.
type exchange struct {
	status    int
	body      []byte
	netErr    error
	buildErr  error
	usedToken string
}

// do performs one round trip. It never returns an error: every failure mode
// is captured in the exchange and classified by the normalizer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) exchange {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return exchange{buildErr: err}
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return exchange{buildErr: err}
	}
	req.Header.Set("Content-Type", "application/json")

	// Attach the bearer credential only when one is actually held; an empty
	// Authorization header is never sent.
	token, ok := c.creds.Get()
	if ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return exchange{netErr: err, usedToken: token}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return exchange{netErr: err, usedToken: token}
	}

	ex := exchange{status: resp.StatusCode, body: data, usedToken: token}

	if resp.StatusCode == http.StatusUnauthorized && token != "" && c.onUnauthorized != nil {
		c.log.Warn().Str("resource", c.resource).Str("path", path).Msg("authentication rejected, forcing logout")
		c.onUnauthorized(token)
	}

	return ex
}
