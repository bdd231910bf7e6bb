// Package feedback turns a completed session's numbers into words. It
// provides a provider-agnostic completion client for the narrative feedback,
// question generation, and answer evaluation flows, with middleware for
// rate limiting, metrics, and tracing.
//
// Providers (OpenAI, Anthropic, Google Gemini) register themselves behind
// the CoreCompleter interface, so the generator and middleware never touch
// provider SDKs directly.
//
// Basic usage:
//
//	client, err := feedback.NewClient(feedback.ClientConfig{
//	    Provider: "openai",
//	    APIKey:   os.Getenv("OPENAI_API_KEY"),
//	    Model:    "gpt-4o-mini",
//	})
//	gen := feedback.NewGenerator(client, logger)
package feedback

import (
	"context"
	"fmt"
	"time"
)

// CoreCompleter is the minimal surface a provider must implement. The
// middleware chain wraps any conforming implementation.
type CoreCompleter interface {
	// DoRequest sends a prompt and returns the generated text together
	// with the input and output token counts. Providers fall back to an
	// estimate when the API omits usage data.
	DoRequest(ctx context.Context, prompt string, opts map[string]any) (response string, tokensIn, tokensOut int, err error)

	// GetModel returns the currently configured model name.
	GetModel() string

	// SetModel updates the model used for subsequent requests.
	SetModel(model string)
}

// Middleware wraps a CoreCompleter to add cross-cutting behavior such as
// rate limiting or metrics without touching provider logic.
type Middleware func(CoreCompleter) CoreCompleter

// ClientConfig holds the settings for constructing a completion client.
type ClientConfig struct {
	// Provider selects the registered provider implementation:
	// "openai", "anthropic", or "google".
	Provider string

	// APIKey authenticates requests to the provider.
	APIKey string

	// Model names the model to use. Empty selects the provider default.
	Model string

	// BaseURL overrides the provider's default endpoint when set.
	BaseURL string

	// Timeout bounds individual requests. Zero means no client-side
	// timeout beyond the caller's context.
	Timeout time.Duration

	// Middleware is applied in order, first entry outermost.
	Middleware []Middleware
}

// Client wraps a provider with its middleware chain and satisfies the
// completion port used by the generators.
type Client struct {
	core CoreCompleter
}

// NewClient builds a completion client for the configured provider,
// assembling the middleware chain outermost-first.
func NewClient(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	factory, ok := providerFactories[config.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, config.Provider)
	}

	core, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", config.Provider, err)
	}

	// Reverse application keeps the first configured middleware outermost.
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}

	return &Client{core: core}, nil
}

// Complete sends a prompt and returns the generated text, discarding
// token usage.
func (c *Client) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	response, _, _, err := c.core.DoRequest(ctx, prompt, options)
	return response, err
}

// CompleteWithUsage sends a prompt and returns the generated text with
// input and output token counts.
func (c *Client) CompleteWithUsage(ctx context.Context, prompt string, options map[string]any) (string, int, int, error) {
	return c.core.DoRequest(ctx, prompt, options)
}

// GetModel returns the model name of the underlying provider.
func (c *Client) GetModel() string { return c.core.GetModel() }

// ProviderFactory constructs a provider from client configuration.
type ProviderFactory func(ClientConfig) (CoreCompleter, error)

var providerFactories = map[string]ProviderFactory{}

// RegisterProviderFactory registers a provider under a name, making it
// available to NewClient. Called from provider init functions.
func RegisterProviderFactory(provider string, factory ProviderFactory) {
	providerFactories[provider] = factory
}

// estimateTokens approximates a token count at four characters per token,
// used when a provider response omits usage data.
func estimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return len(text) / 4
}
