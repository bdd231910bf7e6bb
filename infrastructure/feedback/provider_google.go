package feedback

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GoogleDefaultModel is the model used when none is configured.
const GoogleDefaultModel = "gemini-2.0-flash"

func init() {
	RegisterProviderFactory("google", newGoogleProvider)
}

// googleProvider adapts the Gemini API to CoreCompleter. Gemini has no
// separate system role, so a system prompt is prepended to the user prompt;
// JSON-object requests use the response MIME type to enforce JSON output.
type googleProvider struct {
	baseModel
	client *genai.Client
}

func newGoogleProvider(config ClientConfig) (CoreCompleter, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = GoogleDefaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &googleProvider{
		baseModel: baseModel{model: model},
		client:    client,
	}, nil
}

func (p *googleProvider) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	options := parseOptions(opts, p.GetModel())

	finalPrompt := prompt
	if options.system != "" {
		finalPrompt = fmt.Sprintf("System: %s\n\nUser: %s", options.system, prompt)
	}
	contents := []*genai.Content{
		genai.NewContentFromText(finalPrompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{}
	if options.temperature != nil {
		config.Temperature = genai.Ptr(float32(clampFloat(*options.temperature, 0.0, 2.0)))
	}
	if options.maxTokens > 0 {
		config.MaxOutputTokens = int32(options.maxTokens)
	}
	if options.jsonObject {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, options.model, contents, config)
	if err != nil {
		return "", 0, 0, p.wrapError(err)
	}

	content := resp.Text()
	if content == "" {
		return "", 0, 0, ErrEmptyResponse
	}

	tokensIn := estimateTokens(prompt)
	tokensOut := estimateTokens(content)
	if usage := resp.UsageMetadata; usage != nil {
		if usage.PromptTokenCount > 0 {
			tokensIn = int(usage.PromptTokenCount)
		}
		if usage.CandidatesTokenCount > 0 {
			tokensOut = int(usage.CandidatesTokenCount)
		}
	}

	return content, tokensIn, tokensOut, nil
}

func (p *googleProvider) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("gemini request timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("gemini request canceled: %w", err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("gemini authentication failed (%d): %w", apiErr.Code, err)
		case 429:
			return fmt.Errorf("gemini rate limit exceeded: %w", err)
		case 500, 502, 503, 504:
			return fmt.Errorf("gemini server error (%d): %w", apiErr.Code, err)
		default:
			return fmt.Errorf("gemini API error (%d): %w", apiErr.Code, err)
		}
	}

	return fmt.Errorf("gemini request failed: %w", err)
}
