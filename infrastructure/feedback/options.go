package feedback

import "sync"

// Default request parameters applied when the caller's options omit them.
const (
	// DefaultMaxTokens bounds generation length when unspecified.
	DefaultMaxTokens = 1024
)

// requestOptions is the normalized view of the caller's option map that
// every provider consumes.
type requestOptions struct {
	model       string
	system      string
	maxTokens   int
	temperature *float64
	// jsonObject requests a JSON-object response where the provider
	// supports enforcing it; others rely on the prompt alone.
	jsonObject bool
}

// parseOptions normalizes an option map. Recognized keys: "model",
// "system", "max_tokens", "temperature", "json". Missing or ill-typed
// values fall back to defaults.
func parseOptions(opts map[string]any, defaultModel string) requestOptions {
	options := requestOptions{
		model:     defaultModel,
		maxTokens: DefaultMaxTokens,
	}
	if opts == nil {
		return options
	}

	if model, ok := opts["model"].(string); ok && model != "" {
		options.model = model
	}
	if system, ok := opts["system"].(string); ok {
		options.system = system
	}
	if maxTokens, ok := opts["max_tokens"].(int); ok && maxTokens > 0 {
		options.maxTokens = maxTokens
	}
	if temp, ok := opts["temperature"].(float64); ok && temp >= 0 && temp <= 2 {
		options.temperature = &temp
	}
	if jsonObject, ok := opts["json"].(bool); ok {
		options.jsonObject = jsonObject
	}

	return options
}

// clampFloat bounds a value to [min, max].
func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// baseModel provides thread-safe model-name storage shared by the
// provider implementations.
type baseModel struct {
	mu    sync.RWMutex
	model string
}

func (b *baseModel) GetModel() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.model
}

func (b *baseModel) SetModel(model string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = model
}
