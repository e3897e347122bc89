package llmprovider

import (
	"context"

	"ai-chat-bot/pkg/groq"
)

const providerGroq = "groq"

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.ChatCompletionRequest{
		Messages:    convertToGroqMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, groqReq)
	if err != nil {
		return nil, err
	}

	return convertFromGroqResponse(resp, a.client.Model()), nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return providerGroq
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Groq
func convertToGroqMessages(req *Request) []groq.Message {
	messages := make([]groq.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, groq.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		messages = append(messages, groq.Message{Role: msg.Role, Content: msg.Content})
	}
	return messages
}

// convertFromGroqResponse keeps only the first choice.
func convertFromGroqResponse(resp *groq.ChatCompletionResponse, fallbackModel string) *Response {
	model := resp.Model
	if model == "" {
		model = fallbackModel
	}

	out := &Response{
		ProviderName: providerGroq,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = resp.Choices[0].FinishReason
	}

	return out
}
