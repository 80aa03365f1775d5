package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// LoansClient covers the loan book and loan product configuration.
type LoansClient struct {
	rest *Client
}

func NewLoans(baseURL string, creds ports.CredentialStore, opts ...Option) *LoansClient {
	return &LoansClient{rest: New(baseURL, "loans", creds, opts...)}
}

// List returns a page of loans. Filters are optional; undefined keys are
// never serialized.
func (l *LoansClient) List(ctx context.Context, filters Params) domain.Result[domain.LoanList] {
	return Do[domain.LoanList](ctx, l.rest, http.MethodGet, "/loans", filters.Encode(), nil)
}

// GetByID fetches a single loan. A missing loan is a hard failure.
func (l *LoansClient) GetByID(ctx context.Context, id string) domain.Result[domain.Loan] {
	return Do[domain.Loan](ctx, l.rest, http.MethodGet, "/loans/"+url.PathEscape(id), nil, nil)
}

type statusChangeRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty"`
}

// UpdateStatus forwards a status transition request. Whether the transition
// is legal is entirely the backend's decision; the result is relayed as-is.
func (l *LoansClient) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus, note string) domain.Result[domain.Loan] {
	req := statusChangeRequest{Status: string(status), Note: note}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[domain.Loan](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Loan](ctx, l.rest, http.MethodPatch, "/loans/"+url.PathEscape(id)+"/status", nil, req)
}

type bulkRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Action string   `json:"action" validate:"required"`
}

// Bulk applies one action to many loans. The backend may apply it partially;
// the result reports a per-item outcome, and the call itself succeeds even
// when individual items fail.
func (l *LoansClient) Bulk(ctx context.Context, ids []string, action string) domain.Result[domain.BulkResult] {
	req := bulkRequest{IDs: ids, Action: action}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[domain.BulkResult](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.BulkResult](ctx, l.rest, http.MethodPost, "/loans/bulk", nil, req)
}

// LoanProductInput carries the fields of a loan product create/update. Only
// structural checks happen client-side; rate and amount bounds are the
// backend's responsibility.
type LoanProductInput struct {
	Name         string  `json:"name" validate:"required,min=3"`
	InterestRate float64 `json:"interest_rate"`
	MinAmount    float64 `json:"min_amount"`
	MaxAmount    float64 `json:"max_amount"`
	TermMonths   int     `json:"term_months"`
	Active       bool    `json:"active"`
}

// Products lists the configured loan products.
func (l *LoansClient) Products(ctx context.Context) domain.Result[[]domain.LoanProduct] {
	return Do[[]domain.LoanProduct](ctx, l.rest, http.MethodGet, "/loans/products", nil, nil)
}

// CreateProduct creates a loan product.
func (l *LoansClient) CreateProduct(ctx context.Context, in LoanProductInput) domain.Result[domain.LoanProduct] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.LoanProduct](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.LoanProduct](ctx, l.rest, http.MethodPost, "/loans/products", nil, in)
}

// UpdateProduct updates a loan product.
func (l *LoansClient) UpdateProduct(ctx context.Context, id string, in LoanProductInput) domain.Result[domain.LoanProduct] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.LoanProduct](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.LoanProduct](ctx, l.rest, http.MethodPut, "/loans/products/"+url.PathEscape(id), nil, in)
}
