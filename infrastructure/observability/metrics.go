// Package observability provides the Prometheus metrics backend, the
// metrics/health HTTP server, and structured logging setup.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/intix/poise/internal/ports"
)

const namespace = "poise"

// PrometheusMetrics implements the MetricsCollector port on the global
// Prometheus registry. Session lifecycle counters, aggregation timing, and
// completion-client metrics all route through here.
type PrometheusMetrics struct {
	operationLatency *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	systemGauges     *prometheus.GaugeVec

	sessionConfidence prometheus.Histogram
	completionLatency *prometheus.HistogramVec
	completionCalls   *prometheus.CounterVec
	completionTokens  *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collector and registers its metrics in
// the global registry. Construct at most once per process.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		operationLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Execution time of engine operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		operationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total engine operations by name.",
			},
			[]string{"operation"},
		),
		systemGauges: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "system_state",
				Help:      "Current engine state values such as active session count.",
			},
			[]string{"metric"},
		),
		sessionConfidence: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "session_overall_confidence",
				Help:      "Distribution of end-of-session overall confidence scores.",
				Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
		completionLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "completion_latency_seconds",
				Help:      "Latency of completion provider calls.",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"model", "status"},
		),
		completionCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completion_requests_total",
				Help:      "Total completion provider calls.",
			},
			[]string{"model", "status"},
		),
		completionTokens: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completion_tokens_total",
				Help:      "Total tokens exchanged with completion providers.",
			},
			[]string{"model", "direction"},
		),
	}
}

// RecordLatency records an operation's execution time.
func (pm *PrometheusMetrics) RecordLatency(
	operation string, duration time.Duration, labels map[string]string,
) {
	pm.operationLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCounter increments a counter, routing completion-client metrics to
// their dedicated vectors.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "completion_requests_total":
		pm.completionCalls.WithLabelValues(labels["model"], labels["status"]).Add(value)
	case "completion_tokens_in_total":
		pm.completionTokens.WithLabelValues(labels["model"], "in").Add(value)
	case "completion_tokens_out_total":
		pm.completionTokens.WithLabelValues(labels["model"], "out").Add(value)
	default:
		pm.operationCounter.WithLabelValues(metric).Add(value)
	}
}

// RecordGauge sets a current-state gauge such as the active session count.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram records a distribution value, routing the session
// confidence and completion latency metrics to their dedicated histograms.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "session_overall_confidence":
		pm.sessionConfidence.Observe(value)
	case "completion_latency_seconds":
		pm.completionLatency.WithLabelValues(labels["model"], labels["status"]).Observe(value)
	default:
		pm.operationLatency.WithLabelValues(metric).Observe(value)
	}
}

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
