package llm

import (
	"errors"
	"fmt"
)

// ErrNoCredentials indicates the selected provider requires an API key
// and none is configured. Interaction continues in manual-selection
// mode; this is never fatal.
var ErrNoCredentials = errors.New("no API credentials configured")

// ProviderConfig selects and configures the text-generation provider.
type ProviderConfig struct {
	Provider string // ollama (default), openai, anthropic
	APIKey   string
	Model    string
	BaseURL  string
}

// NewTextGenerator creates the appropriate TextGenerator for the
// config. Hosted providers without an API key return ErrNoCredentials.
func NewTextGenerator(cfg ProviderConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai: %w", ErrNoCredentials)
		}
		return NewOpenAIClient(OpenAIConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL}), nil
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrNoCredentials)
		}
		return NewAnthropicClient(AnthropicConfig{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL}), nil
	case "ollama", "":
		return NewOllamaClient(OllamaConfig{BaseURL: cfg.BaseURL, Model: cfg.Model}), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
