package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Routing(t *testing.T) {
	// Metrics register in the global registry, so construct once for the
	// whole test.
	pm := NewPrometheusMetrics()

	pm.RecordCounter("sessions_started", 1, nil)
	pm.RecordCounter("sessions_started", 1, nil)
	assert.InDelta(t, 2.0,
		testutil.ToFloat64(pm.operationCounter.WithLabelValues("sessions_started")), 0.0001)

	// Completion-client metrics route to their dedicated vectors instead
	// of the generic operation counter.
	pm.RecordCounter("completion_requests_total", 1, map[string]string{"model": "m1", "status": "success"})
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(pm.completionCalls.WithLabelValues("m1", "success")), 0.0001)

	pm.RecordCounter("completion_tokens_in_total", 120, map[string]string{"model": "m1"})
	pm.RecordCounter("completion_tokens_out_total", 80, map[string]string{"model": "m1"})
	assert.InDelta(t, 120.0,
		testutil.ToFloat64(pm.completionTokens.WithLabelValues("m1", "in")), 0.0001)
	assert.InDelta(t, 80.0,
		testutil.ToFloat64(pm.completionTokens.WithLabelValues("m1", "out")), 0.0001)

	pm.RecordGauge("sessions_active", 3, nil)
	assert.InDelta(t, 3.0,
		testutil.ToFloat64(pm.systemGauges.WithLabelValues("sessions_active")), 0.0001)

	// Histogram routing paths only need to not blow up; observation
	// contents are not inspectable through the testutil helpers.
	pm.RecordLatency("session_aggregate", 25*time.Millisecond, nil)
	pm.RecordHistogram("session_overall_confidence", 74.5, nil)
	pm.RecordHistogram("completion_latency_seconds", 1.2, map[string]string{"model": "m1", "status": "success"})
	pm.RecordHistogram("transcript_wpm", 140, nil)
}
