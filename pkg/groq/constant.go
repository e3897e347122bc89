package groq

import "time"

const (
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the model used when none is configured
	DefaultModel = "meta-llama/llama-4-maverick-17b-128e-instruct"

	// ModelDeepSeekR1Distill is the reasoning model served by Groq
	ModelDeepSeekR1Distill = "deepseek-r1-distill-llama-70b"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)
