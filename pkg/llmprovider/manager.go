package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-chat-bot/pkg/log"
)

// Manager wraps the configured provider with a request deadline and metrics logging.
// Every call is a single attempt: a failure is returned to the caller as-is.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration // 0 means no deadline beyond the caller's context
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// GenerateContent sends req to the provider exactly once.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProviderConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := m.provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %v", ErrProviderTimeout, m.config.Timeout, err)
		}
		m.logFailure(ctx, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	m.logSuccess(ctx, resp, time.Since(start))
	return resp, nil
}

// Name returns the wrapped provider's name
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the wrapped provider's model
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response, elapsed time.Duration) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		m.provider.Name(), m.provider.Model(), inputTokens, outputTokens, elapsed)
}

// logFailure logs a failed LLM generation attempt
func (m *Manager) logFailure(ctx context.Context, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		m.provider.Name(), m.provider.Model(), err)
}
