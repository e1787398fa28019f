// Package metrics defines and registers all custom Prometheus metrics for
// the MIS backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mis"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role the new account was created with
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// ProfileCacheTotal counts auth-middleware profile lookups against Redis.
// Label:
//   - result: "hit" or "miss"
var ProfileCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_total",
		Help:      "Total number of profile cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Resource metrics ─────────────────────────────────────────────────────────

// InventoryOpsTotal counts completed inventory write operations.
// Label:
//   - op: "create", "update" or "delete"
var InventoryOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_ops_total",
		Help:      "Total number of completed inventory write operations.",
	},
	[]string{"op"},
)

// ActivityOpsTotal counts completed project-activity write operations.
// Label:
//   - op: "create", "update" or "delete"
var ActivityOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_ops_total",
		Help:      "Total number of completed project-activity write operations.",
	},
	[]string{"op"},
)
