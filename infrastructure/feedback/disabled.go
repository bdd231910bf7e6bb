package feedback

import (
	"context"
	"errors"
)

// ErrGenerationDisabled indicates no provider credentials were configured.
var ErrGenerationDisabled = errors.New("completion client disabled: no provider configured")

// DisabledClient is the completion client used when no provider is
// configured. Every call fails with ErrGenerationDisabled, so the
// generators serve their canned fallbacks and sessions still complete.
type DisabledClient struct{}

// NewDisabledClient returns a client that always fails.
func NewDisabledClient() *DisabledClient { return &DisabledClient{} }

func (c *DisabledClient) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	return "", ErrGenerationDisabled
}

func (c *DisabledClient) GetModel() string { return "disabled" }
