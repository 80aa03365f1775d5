package client

import (
	"context"
	"net/http"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
)

// DashboardClient covers the landing-page aggregates. Both endpoints are
// optional backend features: a 404 yields zero-valued data, never an error.
type DashboardClient struct {
	rest *Client
}

func NewDashboard(baseURL string, creds ports.CredentialStore, opts ...Option) *DashboardClient {
	return &DashboardClient{rest: New(baseURL, "dashboard", creds, opts...)}
}

// Stats fetches the aggregate snapshot.
func (d *DashboardClient) Stats(ctx context.Context) domain.Result[domain.DashboardStats] {
	return DoOptional(ctx, d.rest, http.MethodGet, "/dashboard/stats", nil, nil, domain.DashboardStats{})
}

// RecentActivity fetches the recent-activity feed.
func (d *DashboardClient) RecentActivity(ctx context.Context) domain.Result[[]domain.ActivityEntry] {
	return DoOptional(ctx, d.rest, http.MethodGet, "/dashboard/activity", nil, nil, []domain.ActivityEntry{})
}
