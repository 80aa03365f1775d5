package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// NotificationsClient covers the operator notification feed. The listing
// endpoint is not yet implemented on every backend deployment, so a 404
// there degrades to an empty feed instead of an error.
type NotificationsClient struct {
	rest *Client
}

func NewNotifications(baseURL string, creds ports.CredentialStore, opts ...Option) *NotificationsClient {
	return &NotificationsClient{rest: New(baseURL, "notifications", creds, opts...)}
}

// List returns the notification feed. Backends without the endpoint yield an
// empty feed.
func (n *NotificationsClient) List(ctx context.Context, filters Params) domain.Result[[]domain.Notification] {
	return DoOptional(ctx, n.rest, http.MethodGet, "/notifications", filters.Encode(), nil, []domain.Notification{})
}

// MarkRead marks one notification as read.
func (n *NotificationsClient) MarkRead(ctx context.Context, id string) domain.Result[struct{}] {
	return Do[struct{}](ctx, n.rest, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// BroadcastInput is an announcement pushed to all operators.
type BroadcastInput struct {
	Title    string `json:"title" validate:"required,min=3"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category,omitempty"`
}

// Broadcast publishes an announcement.
func (n *NotificationsClient) Broadcast(ctx context.Context, in BroadcastInput) domain.Result[domain.Notification] {
	if err := validate.Struct(in); err != nil {
		return domain.Fail[domain.Notification](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Notification](ctx, n.rest, http.MethodPost, "/notifications/broadcast", nil, in)
}
