package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderConfigured indicates the manager was built without a provider
	ErrNoProviderConfigured = errors.New("no provider configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request ran past its deadline
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrUnknownProvider indicates the configured provider name is not supported
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
