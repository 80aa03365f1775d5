package ports

import (
	"context"

	"github.com/crestfin/admin-console/internal/core/domain"
)

// LoginData is the payload of a successful login call.
type LoginData struct {
	Token string           `json:"token"`
	Admin domain.Principal `json:"admin"`
}

// AuthAPI is the slice of the backend the session controller depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) domain.Result[LoginData]
	Logout(ctx context.Context) domain.Result[struct{}]
	Profile(ctx context.Context) domain.Result[domain.Principal]
}
