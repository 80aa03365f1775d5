// Package metrics defines and registers all custom Prometheus metrics for
// the Crestfin admin console. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the gateway exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_console"

// ── Client SDK metrics ────────────────────────────────────────────────────────

// ClientRequestsTotal counts normalized API client calls.
// Labels:
//   - resource: the resource family the call belongs to (e.g. "loans")
//   - outcome: "success" or the failure classification (e.g. "network_error")
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of backend API calls, labelled by resource family and outcome.",
	},
	[]string{"resource", "outcome"},
)

// ── Gateway metrics ───────────────────────────────────────────────────────────

// ProxyRequestsTotal counts requests forwarded to the backend.
// Labels:
//   - method: the HTTP method forwarded
//   - status: the upstream status class passed back ("2xx", "3xx", "4xx", "5xx") or "error"
var ProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_requests_total",
		Help:      "Total number of requests forwarded through the admin gateway.",
	},
	[]string{"method", "status"},
)

// SessionBindingsTotal counts session bind/unbind operations in the gateway.
// Label:
//   - op: "bind", "unbind", or "revoked" (unbound by an upstream 401)
var SessionBindingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_bindings_total",
		Help:      "Total number of gateway session credential operations.",
	},
	[]string{"op"},
)
