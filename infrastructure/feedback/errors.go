package feedback

import "errors"

// Errors shared across the completion client and providers.
var (
	// ErrEmptyAPIKey indicates a client was configured without an API key.
	ErrEmptyAPIKey = errors.New("API key cannot be empty")

	// ErrUnknownProvider indicates the configured provider name has no
	// registered factory.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEmptyResponse indicates the provider returned no usable content.
	ErrEmptyResponse = errors.New("empty response from provider")
)
