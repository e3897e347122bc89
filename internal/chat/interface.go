package chat

//go:generate mockgen -destination=./mocks/usecase.go -package=mocks -source=interface.go UseCase

import (
	"context"

	"ai-chat-bot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Handle records the prompt, routes it, and records the reply.
	// On a failed completion the user turn stays in history and the error wraps ErrCompletionFailed.
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (HandleOutput, error)

	// History returns the session's turns, oldest first.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// Reset discards the session's conversation.
	Reset(ctx context.Context, sc model.Scope) error
}
