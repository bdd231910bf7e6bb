package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCore is a CoreCompleter that echoes a fixed response and records
// the prompt it received.
type recordingCore struct {
	baseModel
	response  string
	gotPrompt string
}

func (r *recordingCore) DoRequest(_ context.Context, prompt string, _ map[string]any) (string, int, int, error) {
	r.gotPrompt = prompt
	return r.response, 10, 20, nil
}

// tagMiddleware appends a marker to the prompt so middleware ordering is
// observable at the core.
func tagMiddleware(tag string) Middleware {
	return func(next CoreCompleter) CoreCompleter {
		return &taggedCore{CoreCompleter: next, tag: tag}
	}
}

type taggedCore struct {
	CoreCompleter
	tag string
}

func (t *taggedCore) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	return t.CoreCompleter.DoRequest(ctx, prompt+" "+t.tag, opts)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(ClientConfig{Provider: "openai"})
	assert.ErrorIs(t, err, ErrEmptyAPIKey)

	_, err = NewClient(ClientConfig{Provider: "no-such-provider", APIKey: "key"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewClient_MiddlewareAppliedInOrder(t *testing.T) {
	core := &recordingCore{response: "ok"}
	RegisterProviderFactory("recording", func(ClientConfig) (CoreCompleter, error) {
		return core, nil
	})

	client, err := NewClient(ClientConfig{
		Provider:   "recording",
		APIKey:     "key",
		Middleware: []Middleware{tagMiddleware("outer"), tagMiddleware("inner")},
	})
	require.NoError(t, err)

	response, tokensIn, tokensOut, err := client.CompleteWithUsage(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", response)
	assert.Equal(t, 10, tokensIn)
	assert.Equal(t, 20, tokensOut)

	// First configured middleware runs first, so its tag lands first.
	assert.Equal(t, "prompt outer inner", core.gotPrompt)
}

func TestParseOptions(t *testing.T) {
	temp := 0.7

	tests := []struct {
		name string
		opts map[string]any
		want requestOptions
	}{
		{
			name: "nil map yields defaults",
			opts: nil,
			want: requestOptions{model: "default-model", maxTokens: DefaultMaxTokens},
		},
		{
			name: "all keys recognized",
			opts: map[string]any{
				"model":       "custom",
				"system":      "be brief",
				"max_tokens":  256,
				"temperature": 0.7,
				"json":        true,
			},
			want: requestOptions{
				model:       "custom",
				system:      "be brief",
				maxTokens:   256,
				temperature: &temp,
				jsonObject:  true,
			},
		},
		{
			name: "ill-typed values fall back",
			opts: map[string]any{
				"model":       42,
				"max_tokens":  "many",
				"temperature": "warm",
			},
			want: requestOptions{model: "default-model", maxTokens: DefaultMaxTokens},
		},
		{
			name: "out-of-range temperature ignored",
			opts: map[string]any{"temperature": 3.5},
			want: requestOptions{model: "default-model", maxTokens: DefaultMaxTokens},
		},
		{
			name: "empty model keeps default",
			opts: map[string]any{"model": ""},
			want: requestOptions{model: "default-model", maxTokens: DefaultMaxTokens},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOptions(tt.opts, "default-model")
			assert.Equal(t, tt.want.model, got.model)
			assert.Equal(t, tt.want.system, got.system)
			assert.Equal(t, tt.want.maxTokens, got.maxTokens)
			assert.Equal(t, tt.want.jsonObject, got.jsonObject)
			if tt.want.temperature == nil {
				assert.Nil(t, got.temperature)
			} else {
				require.NotNil(t, got.temperature)
				assert.InDelta(t, *tt.want.temperature, *got.temperature, 0.0001)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, estimateTokens(""))
	assert.Equal(t, 1, estimateTokens("abcd"))
	assert.Equal(t, 25, estimateTokens(string(make([]byte, 100))))
}

func TestDisabledClient(t *testing.T) {
	client := DisabledClient{}

	_, err := client.Complete(context.Background(), "prompt", nil)
	assert.ErrorIs(t, err, ErrGenerationDisabled)
	assert.Equal(t, "disabled", client.GetModel())
}
