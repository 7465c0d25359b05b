package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	budgetsCreated    *prometheus.CounterVec
	commitFailures    prometheus.Counter
	commitDuration    prometheus.Histogram
	conflictsDetected prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		budgetsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_budgets_created_total",
				Help: "Total number of budgets created by plan commits",
			},
			[]string{"type"},
		),
		commitFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "planner_commit_failures_total",
				Help: "Total number of individual budget creations that failed during commits",
			},
		),
		commitDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "planner_commit_duration_milliseconds",
				Help:    "Plan commit duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		conflictsDetected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "planner_conflicts_detected_total",
				Help: "Total number of duplicate budget conflicts detected",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordBudgetCreated(budgetType string) {
	m.budgetsCreated.WithLabelValues(budgetType).Inc()
}

func (m *PrometheusMetrics) RecordCommitFailure() {
	m.commitFailures.Inc()
}

func (m *PrometheusMetrics) RecordCommitDuration(duration time.Duration) {
	m.commitDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordConflictsDetected(count int) {
	if count > 0 {
		m.conflictsDetected.Add(float64(count))
	}
}

// NoopMetrics is a MetricsRecorderInterface that records nothing. Used in
// tests to avoid duplicate prometheus registration.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) RecordBudgetCreated(string)          {}
func (m *NoopMetrics) RecordCommitFailure()                {}
func (m *NoopMetrics) RecordCommitDuration(time.Duration)  {}
func (m *NoopMetrics) RecordConflictsDetected(int)         {}
