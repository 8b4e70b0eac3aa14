// Package metrics defines the custom Prometheus metrics of the catalog API.
// HTTP request metrics come from echoprometheus; these count domain outcomes.
// promauto registers everything with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Resource metrics ─────────────────────────────────────────────────────────

// ResourcesCreatedTotal counts successful creations.
// Label:
//   - resource: "client", "mobile" or "user"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by resource kind.",
	},
	[]string{"resource"},
)

// ResourcesUpdatedTotal counts successful PUT requests.
var ResourcesUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_updated_total",
		Help:      "Total number of resources updated, by resource kind.",
	},
	[]string{"resource"},
)

// ResourcesDeletedTotal counts successful deletions.
var ResourcesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_deleted_total",
		Help:      "Total number of resources deleted, by resource kind.",
	},
	[]string{"resource"},
)

// ── Security metrics ─────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login_check outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests refused with 429.
// Label:
//   - scope: the limiter name (e.g. "login")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by a rate limiter.",
	},
	[]string{"scope"},
)

// AccessDeniedTotal counts 403 answers.
// Label:
//   - reason: "role" for a failed role check, "ownership" for a failed
//     ownership predicate
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by an authorization check.",
	},
	[]string{"reason"},
)
