package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// InvestmentsClient covers investor positions and plan configuration.
type InvestmentsClient struct {
	rest *Client
}

func NewInvestments(baseURL string, creds ports.CredentialStore, opts ...Option) *InvestmentsClient {
	return &InvestmentsClient{rest: New(baseURL, "investments", creds, opts...)}
}

// List returns a page of investments with pagination passed through
// unmodified from the backend.
func (i *InvestmentsClient) List(ctx context.Context, filters Params) domain.Result[domain.InvestmentList] {
	return Do[domain.InvestmentList](ctx, i.rest, http.MethodGet, "/investments", filters.Encode(), nil)
}

// GetByID fetches a single investment.
func (i *InvestmentsClient) GetByID(ctx context.Context, id string) domain.Result[domain.Investment] {
	return Do[domain.Investment](ctx, i.rest, http.MethodGet, "/investments/"+url.PathEscape(id), nil, nil)
}

// UpdateStatus forwards a status transition request and relays the result.
func (i *InvestmentsClient) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus, note string) domain.Result[domain.Investment] {
	req := statusChangeRequest{Status: string(status), Note: note}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[domain.Investment](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Investment](ctx, i.rest, http.MethodPatch, "/investments/"+url.PathEscape(id)+"/status", nil, req)
}

// InvestmentPlanInput carries the fields of a plan create/update.
type InvestmentPlanInput struct {
	Name       string  `json:"name" validate:"required,min=3"`
	Rate       float64 `json:"rate"`
	MinAmount  float64 `json:"min_amount"`
	MaxAmount  float64 `json:"max_amount"`
	TermMonths int     `json:"term_months"`
	Active     bool    `json:"active"`
}

// Plans lists the configured investment plans.
func (i *InvestmentsClient) Plans(ctx context.Context) domain.Result[[]domain.InvestmentPlan] {
	return Do[[]domain.InvestmentPlan](ctx, i.rest, http.MethodGet, "/investments/plans", nil, nil)
}

// CreatePlan creates an investment plan.
func (i *InvestmentsClient) CreatePlan(ctx context.Context, in InvestmentPlanInput) domain.Result[domain.InvestmentPlan] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.InvestmentPlan](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.InvestmentPlan](ctx, i.rest, http.MethodPost, "/investments/plans", nil, in)
}

// UpdatePlan updates an investment plan.
func (i *InvestmentsClient) UpdatePlan(ctx context.Context, id string, in InvestmentPlanInput) domain.Result[domain.InvestmentPlan] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.InvestmentPlan](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.InvestmentPlan](ctx, i.rest, http.MethodPut, "/investments/plans/"+url.PathEscape(id), nil, in)
}
