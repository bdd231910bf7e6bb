package feedback

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// rateLimitedCompleter applies a token bucket in front of the provider so
// session-end bursts stay inside the provider's request quota.
type rateLimitedCompleter struct {
	next    CoreCompleter
	limiter *rate.Limiter
}

// RateLimitMiddleware enforces a sustained requests-per-second limit with
// the given burst allowance. Waiting respects the request context.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next CoreCompleter) CoreCompleter {
		return &rateLimitedCompleter{next: next, limiter: limiter}
	}
}

func (r *rateLimitedCompleter) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", 0, 0, fmt.Errorf("rate limit: %w", err)
	}
	return r.next.DoRequest(ctx, prompt, opts)
}

func (r *rateLimitedCompleter) GetModel() string  { return r.next.GetModel() }
func (r *rateLimitedCompleter) SetModel(m string) { r.next.SetModel(m) }
