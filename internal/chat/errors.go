package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyPrompt      = errors.New("prompt is empty")
	ErrCompletionFailed = errors.New("completion request failed")
	ErrEmptyCompletion  = errors.New("completion returned no response")
	ErrMissingSession   = errors.New("session id is missing")
)
