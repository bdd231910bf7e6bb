package feedback

import (
	"context"
	"time"

	"github.com/intix/poise/internal/ports"
)

// measuredCompleter records latency, request counts, and token usage for
// every provider call.
type measuredCompleter struct {
	next      CoreCompleter
	collector ports.MetricsCollector
}

// MetricsMiddleware records per-request metrics through the given
// collector. A nil collector disables recording but keeps the chain intact.
func MetricsMiddleware(collector ports.MetricsCollector) Middleware {
	return func(next CoreCompleter) CoreCompleter {
		return &measuredCompleter{next: next, collector: collector}
	}
}

func (m *measuredCompleter) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	start := time.Now()
	response, tokensIn, tokensOut, err := m.next.DoRequest(ctx, prompt, opts)

	if m.collector != nil {
		labels := map[string]string{
			"model":  m.next.GetModel(),
			"status": "success",
		}
		if err != nil {
			labels["status"] = "error"
		}

		m.collector.RecordHistogram("completion_latency_seconds", time.Since(start).Seconds(), labels)
		m.collector.RecordCounter("completion_requests_total", 1, labels)
		if err == nil {
			m.collector.RecordCounter("completion_tokens_in_total", float64(tokensIn), labels)
			m.collector.RecordCounter("completion_tokens_out_total", float64(tokensOut), labels)
		}
	}

	return response, tokensIn, tokensOut, err
}

func (m *measuredCompleter) GetModel() string  { return m.next.GetModel() }
func (m *measuredCompleter) SetModel(s string) { m.next.SetModel(s) }
