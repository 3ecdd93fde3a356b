// Package metrics defines all custom Prometheus metrics for the admin
// dashboard data layer. It is the single source of truth for metric names,
// labels, and help strings; metrics register themselves with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// CacheLookupsTotal counts entity-cache reads.
// Labels:
//   - entity: "user" (per-id entry) or "list"
//   - result: "hit", "miss", or "expired" (entry found but past max age)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of entity cache lookups, by entity and result.",
	},
	[]string{"entity", "result"},
)

// TransportRequestDuration measures how long a single transport call takes,
// simulated latency included.
// Label:
//   - operation: the Transport method name (e.g. "list_users")
var TransportRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "transport_request_duration_seconds",
		Help:      "Duration of data transport calls, by operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of operator login attempts, by result.",
	},
	[]string{"result"},
)

// StatusUpdatesTotal counts user status mutations that succeeded.
// Label:
//   - status: the status applied (e.g. "Blacklisted")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of successful user status updates, by new status.",
	},
	[]string{"status"},
)

// AuditEventsTotal counts audit-trail writes attempted by the queue workers.
// Label:
//   - result: "recorded" or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of status-change audit events processed, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each audit worker
// channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each worker channel.",
	},
	[]string{"worker_id"},
)
