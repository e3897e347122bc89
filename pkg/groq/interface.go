package groq

import "context"

// IGroq defines the interface for the Groq chat completion client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// CreateChatCompletion sends one chat completion request
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Groq client with the given configuration
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
