package groq

import "errors"

var (
	// ErrMissingAPIKey is returned when the client is built without a key
	ErrMissingAPIKey = errors.New("groq: APIKey is required")

	// ErrEmptyChoices is returned when the API answers without any choice
	ErrEmptyChoices = errors.New("groq: response contains no choices")
)
