package feedback

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDefaultModel is the model used when none is configured. The
// coaching prompts are short and structured, so the mini tier suffices.
const OpenAIDefaultModel = "gpt-4o-mini"

func init() {
	RegisterProviderFactory("openai", newOpenAIProvider)
}

// openAIProvider adapts the OpenAI chat completion API to CoreCompleter.
type openAIProvider struct {
	baseModel
	client *openai.Client
}

func newOpenAIProvider(config ClientConfig) (CoreCompleter, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = OpenAIDefaultModel
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	return &openAIProvider{
		baseModel: baseModel{model: model},
		client:    openai.NewClientWithConfig(clientConfig),
	}, nil
}

// DoRequest sends a chat completion request. When the options ask for a
// JSON object the request uses OpenAI's JSON response format, which
// guarantees syntactically valid JSON output.
func (p *openAIProvider) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	options := parseOptions(opts, p.GetModel())

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if options.system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: options.system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:     options.model,
		Messages:  messages,
		MaxTokens: options.maxTokens,
	}
	if options.temperature != nil {
		req.Temperature = float32(clampFloat(*options.temperature, 0.0, 2.0))
	}
	if options.jsonObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", 0, 0, p.wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, 0, ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	tokensIn := resp.Usage.PromptTokens
	if tokensIn == 0 {
		tokensIn = estimateTokens(prompt)
	}
	tokensOut := resp.Usage.CompletionTokens
	if tokensOut == 0 {
		tokensOut = estimateTokens(content)
	}

	return content, tokensIn, tokensOut, nil
}

func (p *openAIProvider) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("openai request timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("openai request canceled: %w", err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return fmt.Errorf("openai authentication failed (%d): %w", apiErr.HTTPStatusCode, err)
		case 429:
			return fmt.Errorf("openai rate limit exceeded: %w", err)
		case 500, 502, 503, 504:
			return fmt.Errorf("openai server error (%d): %w", apiErr.HTTPStatusCode, err)
		default:
			return fmt.Errorf("openai API error (%d): %w", apiErr.HTTPStatusCode, err)
		}
	}

	return fmt.Errorf("openai request failed: %w", err)
}
