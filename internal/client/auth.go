package client

import (
	"context"
	"net/http"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// AuthClient covers login, logout, and the authenticated profile.
type AuthClient struct {
	rest *Client
}

func NewAuth(baseURL string, creds ports.CredentialStore, opts ...Option) *AuthClient {
	return &AuthClient{rest: New(baseURL, "auth", creds, opts...)}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token and the authenticated
// principal. The token is not stored here; that is the session controller's
// job.
func (a *AuthClient) Login(ctx context.Context, email, password string) domain.Result[ports.LoginData] {
	req := loginRequest{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[ports.LoginData](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[ports.LoginData](ctx, a.rest, http.MethodPost, "/auth/login", nil, req)
}

// Logout invalidates the session server-side. Callers clear local state
// regardless of the outcome.
func (a *AuthClient) Logout(ctx context.Context) domain.Result[struct{}] {
	return Do[struct{}](ctx, a.rest, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile fetches the principal for the current credential.
func (a *AuthClient) Profile(ctx context.Context) domain.Result[domain.Principal] {
	return Do[domain.Principal](ctx, a.rest, http.MethodGet, "/auth/profile", nil, nil)
}
