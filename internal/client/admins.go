package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// AdminsClient covers administrator account management. A 404 here always
// stays a hard failure: "admin not found" is a real error, not a missing
// endpoint.
type AdminsClient struct {
	rest *Client
}

func NewAdmins(baseURL string, creds ports.CredentialStore, opts ...Option) *AdminsClient {
	return &AdminsClient{rest: New(baseURL, "admins", creds, opts...)}
}

// AdminList is the items-plus-pagination payload of an admin listing.
type AdminList struct {
	Admins     []domain.Admin    `json:"admins"`
	Pagination domain.Pagination `json:"pagination"`
}

// List returns a page of administrator accounts.
func (a *AdminsClient) List(ctx context.Context, filters Params) domain.Result[AdminList] {
	return Do[AdminList](ctx, a.rest, http.MethodGet, "/admins", filters.Encode(), nil)
}

// GetByID fetches one administrator account.
func (a *AdminsClient) GetByID(ctx context.Context, id string) domain.Result[domain.Admin] {
	return Do[domain.Admin](ctx, a.rest, http.MethodGet, "/admins/"+url.PathEscape(id), nil, nil)
}

// CreateAdminInput carries a new administrator account. Checks here are
// purely structural, to avoid an obviously wasted round trip.
type CreateAdminInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// Create provisions an administrator account.
func (a *AdminsClient) Create(ctx context.Context, in CreateAdminInput) domain.Result[domain.Admin] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.Admin](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Admin](ctx, a.rest, http.MethodPost, "/admins", nil, in)
}

// UpdateAdminInput carries the mutable fields of an administrator account.
type UpdateAdminInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Role  string `json:"role,omitempty"`
}

// Update modifies an administrator account.
func (a *AdminsClient) Update(ctx context.Context, id string, in UpdateAdminInput) domain.Result[domain.Admin] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.Admin](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Admin](ctx, a.rest, http.MethodPut, "/admins/"+url.PathEscape(id), nil, in)
}

// UpdateStatus activates or suspends an account.
func (a *AdminsClient) UpdateStatus(ctx context.Context, id, status string) domain.Result[domain.Admin] {
	req := statusChangeRequest{Status: status}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[domain.Admin](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Admin](ctx, a.rest, http.MethodPatch, "/admins/"+url.PathEscape(id)+"/status", nil, req)
}

// Delete removes an administrator account.
func (a *AdminsClient) Delete(ctx context.Context, id string) domain.Result[struct{}] {
	return Do[struct{}](ctx, a.rest, http.MethodDelete, "/admins/"+url.PathEscape(id), nil, nil)
}
