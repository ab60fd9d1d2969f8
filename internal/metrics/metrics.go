// Package metrics exposes Prometheus instrumentation for the validation
// service. Collectors are registered on the default registry via promauto
// and served by the /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ValidationsTotal counts validation calls by source platform and
	// outcome ("valid" or "invalid").
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataguard",
		Name:      "validations_total",
		Help:      "Number of record validations by source and outcome.",
	}, []string{"source", "outcome"})

	// IssuesTotal counts individual findings by severity and rule code.
	IssuesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataguard",
		Name:      "validation_issues_total",
		Help:      "Number of validation issues by severity and code.",
	}, []string{"severity", "code"})

	// ValidationDuration observes end-to-end validation latency including
	// persistence.
	ValidationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dataguard",
		Name:      "validation_duration_seconds",
		Help:      "Validation call duration in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	// SyncRunsTotal counts connector sync attempts by platform and status
	// ("ok" or "error").
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dataguard",
		Name:      "sync_runs_total",
		Help:      "Number of connector sync runs by source and status.",
	}, []string{"source", "status"})
)

// ObserveDuration records one validation duration sample.
func ObserveDuration(start time.Time) {
	ValidationDuration.Observe(time.Since(start).Seconds())
}
