package llmprovider

import (
	"fmt"
	"net/http"
	"strings"

	"ai-chat-bot/config"
	"ai-chat-bot/pkg/groq"
)

// NewProvider creates the Provider described by config.LLMConfig.
// The HTTP client gets the same timeout as the Manager's request deadline.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	switch strings.ToLower(cfg.Provider) {
	case providerGroq, "":
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			// Timeout 0 leaves the request unbounded, like the Manager.
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
