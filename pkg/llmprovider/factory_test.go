package llmprovider_test

import (
	"errors"
	"testing"

	"ai-chat-bot/config"
	"ai-chat-bot/pkg/groq"
	"ai-chat-bot/pkg/llmprovider"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "groq with model",
			cfg:       &config.LLMConfig{Provider: "groq", APIKey: "k", Model: groq.ModelDeepSeekR1Distill},
			wantModel: groq.ModelDeepSeekR1Distill,
		},
		{
			name:      "empty provider defaults to groq",
			cfg:       &config.LLMConfig{APIKey: "k"},
			wantModel: groq.DefaultModel,
		},
		{
			name:    "missing API key",
			cfg:     &config.LLMConfig{Provider: "groq"},
			wantErr: true,
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := llmprovider.NewProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.Name() != "groq" {
				t.Errorf("expected groq provider, got %s", p.Name())
			}
			if p.Model() != tt.wantModel {
				t.Errorf("expected model %s, got %s", tt.wantModel, p.Model())
			}
		})
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := llmprovider.NewProvider(&config.LLMConfig{Provider: "openai", APIKey: "k"})
	if !errors.Is(err, llmprovider.ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}
