// Package metrics defines and registers all custom Prometheus metrics for
// the rental ledger backend. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time; expose them by mounting promhttp on the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carrental"

// RequestsTotal counts handled API requests.
// Labels:
//   - route: the mux route name (e.g. "checkout", "deposit")
//   - code: the HTTP status code written
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests handled, by route and status code.",
	},
	[]string{"route", "code"},
)

// RequestDuration measures how long one API request takes end-to-end.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route"},
)

// EventsEmittedTotal counts notification events emitted by the core.
// Label:
//   - type: the event type (e.g. "CHECKED_OUT", "PAYMENT_CLEARED")
var EventsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_emitted_total",
		Help:      "Total number of notification events emitted, by type.",
	},
	[]string{"type"},
)

// TreasuryCollectedCents tracks the treasury total as of the last snapshot.
var TreasuryCollectedCents = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "treasury_collected_cents",
		Help:      "Cleared payments held by the treasury, from the last ledger snapshot.",
	},
)

// AccountsRegistered tracks the account count as of the last snapshot.
var AccountsRegistered = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "accounts_registered",
		Help:      "Registered accounts, from the last ledger snapshot.",
	},
)

// ItemsTotal tracks the highest assigned item identifier as of the last snapshot.
var ItemsTotal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "items_total",
		Help:      "Catalog items ever added, from the last ledger snapshot.",
	},
)
