package feedback

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// tracedCompleter wraps provider calls in an OpenTelemetry span so the
// completion step shows up in session-end traces.
type tracedCompleter struct {
	next        CoreCompleter
	serviceName string
}

// TracingMiddleware adds a span per completion request, tagged with the
// service name, model, and prompt/response sizes.
func TracingMiddleware(serviceName string) Middleware {
	return func(next CoreCompleter) CoreCompleter {
		return &tracedCompleter{next: next, serviceName: serviceName}
	}
}

func (t *tracedCompleter) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	tracer := otel.Tracer("feedback-completion")
	ctx, span := tracer.Start(ctx, "feedback.complete")
	defer span.End()

	span.SetAttributes(
		attribute.String("service.name", t.serviceName),
		attribute.String("completion.model", t.next.GetModel()),
		attribute.Int("completion.prompt_length", len(prompt)),
	)

	response, tokensIn, tokensOut, err := t.next.DoRequest(ctx, prompt, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return response, tokensIn, tokensOut, err
	}

	span.SetAttributes(
		attribute.Int("completion.tokens_in", tokensIn),
		attribute.Int("completion.tokens_out", tokensOut),
	)
	span.SetStatus(codes.Ok, "completion succeeded")
	return response, tokensIn, tokensOut, nil
}

func (t *tracedCompleter) GetModel() string  { return t.next.GetModel() }
func (t *tracedCompleter) SetModel(m string) { t.next.SetModel(m) }
