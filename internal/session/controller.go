// Package session owns the console's authentication lifecycle: login,
// logout, silent restoration at startup, forced logout on authentication
// failures, and role/permission queries over the authenticated principal.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
)

// State is the controller's position in the authentication lifecycle.
type State string

const (
	Unauthenticated State = "unauthenticated"
	Authenticating  State = "authenticating"
	Authenticated   State = "authenticated"
)

// Controller is the session state machine. Safe for concurrent use; state
// and principal are only touched under the mutex, never while a backend call
// is in flight.
type Controller struct {
	auth  ports.AuthAPI
	creds ports.CredentialStore
	log   zerolog.Logger

	// onRedirect sends the presentation layer back to the login entry point
	// after a forced logout.
	onRedirect func()

	mu        sync.Mutex
	state     State
	principal *domain.Principal
}

// Option configures a Controller.
type Option func(*Controller)

// WithRedirect installs the forced-logout redirect callback.
func WithRedirect(fn func()) Option {
	return func(c *Controller) { c.onRedirect = fn }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a Controller in the Unauthenticated state. Call Restore to
// attempt silent restoration from a persisted credential.
func New(auth ports.AuthAPI, creds ports.CredentialStore, opts ...Option) *Controller {
	c := &Controller{
		auth:  auth,
		creds: creds,
		log:   zerolog.Nop(),
		state: Unauthenticated,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Principal returns the authenticated principal, if any.
func (c *Controller) Principal() (domain.Principal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.principal == nil {
		return domain.Principal{}, false
	}
	return *c.principal, true
}

// Restore attempts silent restoration: with a persisted credential present
// the controller optimistically becomes Authenticated and fetches the
// principal; if that fetch fails the credential is cleared and the
// controller falls back to Unauthenticated. Reports whether a session was
// restored.
func (c *Controller) Restore(ctx context.Context) bool {
	token, ok := c.creds.Get()
	if !ok {
		return false
	}

	// A token whose exp claim is already past cannot restore anything;
	// skip the round trip. Opaque tokens fall through to the profile fetch.
	if tokenExpired(token) {
		c.log.Debug().Msg("persisted credential expired, discarding")
		c.creds.Clear()
		return false
	}

	c.mu.Lock()
	c.state = Authenticated
	c.mu.Unlock()

	res := c.auth.Profile(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.creds.Clear()
		c.principal = nil
		c.state = Unauthenticated
		return false
	}
	principal := res.Data
	c.principal = &principal
	return true
}

// Login authenticates with the backend. On success the credential and
// principal are stored and the controller becomes Authenticated; on failure
// it stays Unauthenticated and the classified error is surfaced verbatim.
func (c *Controller) Login(ctx context.Context, email, password string) domain.Result[domain.Principal] {
	c.mu.Lock()
	c.state = Authenticating
	c.mu.Unlock()

	res := c.auth.Login(ctx, email, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !res.Success {
		c.state = Unauthenticated
		return domain.Result[domain.Principal]{Err: res.Err}
	}

	c.creds.Set(res.Data.Token)
	principal := res.Data.Admin
	c.principal = &principal
	c.state = Authenticated
	c.log.Info().Str("admin_id", principal.ID).Str("role", principal.Role).Msg("session established")
	return domain.Ok(principal, res.Message)
}

// Logout ends the session. The remote call is best effort: local state
// always ends Unauthenticated, even when the backend is unreachable.
func (c *Controller) Logout(ctx context.Context) {
	res := c.auth.Logout(ctx)
	if !res.Success {
		c.log.Warn().Str("message", res.Err.Message).Msg("remote logout failed, clearing local session anyway")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds.Clear()
	c.principal = nil
	c.state = Unauthenticated
}

// HandleUnauthorized is the forced-logout path, wired as the transport's
// 401 hook. usedToken is the credential the rejected request carried; a 401
// from a superseded request (the token no longer matches) must not clobber a
// just-established session, and repeat occurrences against an already
// cleared store are no-ops.
func (c *Controller) HandleUnauthorized(usedToken string) {
	c.mu.Lock()

	current, ok := c.creds.Get()
	if !ok || (usedToken != "" && usedToken != current) {
		c.mu.Unlock()
		return
	}

	c.creds.Clear()
	c.principal = nil
	c.state = Unauthenticated
	redirect := c.onRedirect
	c.mu.Unlock()

	c.log.Info().Msg("session terminated by authentication failure")
	if redirect != nil {
		redirect()
	}
}

// HasRole reports whether the principal's role is in the allowed set. The
// super role passes regardless of the set's contents, including an empty
// set.
func (c *Controller) HasRole(allowed ...string) bool {
	p, ok := c.Principal()
	if !ok {
		return false
	}
	if p.Role == domain.RoleSuperAdmin {
		return true
	}
	for _, role := range allowed {
		if role == p.Role {
			return true
		}
	}
	return false
}

// HasPermission looks up the static per-role capability table.
func (c *Controller) HasPermission(name string) bool {
	p, ok := c.Principal()
	if !ok {
		return false
	}
	return domain.Permissions(p.Role)[name]
}

// tokenExpired inspects the exp claim without verifying the signature.
// Tokens that are not JWTs, or carry no exp, are treated as live and left
// for the backend to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
