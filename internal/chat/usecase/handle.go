package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-chat-bot/internal/chat"
	"ai-chat-bot/internal/model"
	"ai-chat-bot/internal/router"
	"ai-chat-bot/pkg/llmprovider"
)

// Handle records the prompt, routes it and records the reply.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input chat.HandleInput) (chat.HandleOutput, error) {
	if sc.SessionID == "" {
		return chat.HandleOutput{}, chat.ErrMissingSession
	}
	if strings.TrimSpace(input.Prompt) == "" {
		return chat.HandleOutput{}, chat.ErrEmptyPrompt
	}

	log := uc.sessions.Get(sc.SessionID)

	// One exchange at a time per session, so a double submit cannot interleave turns.
	log.LockTurn()
	defer log.UnlockTurn()

	userTurn := uc.newTurn(chat.RoleUser, input.Prompt, nil)
	log.Append(userTurn)

	route := uc.router.Classify(input.Prompt)
	uc.l.Infof(ctx, "chat.usecase.Handle: session=%s intent=%s keyword=%q",
		sc.SessionID, route.Intent, route.Keyword)

	output := chat.HandleOutput{
		UserTurn: userTurn,
		Intent:   route.Intent,
	}

	var (
		assistant chat.Turn
		err       error
	)
	switch route.Intent {
	case router.IntentImageRequest:
		assistant, err = uc.imageTurn()
	case router.IntentDiagramRequest:
		assistant = uc.diagramTurn()
	default:
		assistant, err = uc.completionTurn(ctx, input.Prompt)
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Handle: session=%s intent=%s: %v", sc.SessionID, route.Intent, err)
		return output, err
	}

	log.Append(assistant)
	output.AssistantTurn = &assistant

	return output, nil
}

// completionTurn sends only the latest prompt to the model, never the history.
func (uc *implUseCase) completionTurn(ctx context.Context, prompt string) (chat.Turn, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: string(chat.RoleUser), Content: prompt},
		},
	})
	if err != nil {
		return chat.Turn{}, fmt.Errorf("%w: %w", chat.ErrCompletionFailed, err)
	}
	if resp == nil {
		return chat.Turn{}, fmt.Errorf("%w: %w", chat.ErrCompletionFailed, chat.ErrEmptyCompletion)
	}

	// The first choice is kept verbatim, even when it is empty.
	return uc.newTurn(chat.RoleAssistant, resp.Content, nil), nil
}

// History returns a copy of the session's turns, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	if sc.SessionID == "" {
		return chat.HistoryOutput{}, chat.ErrMissingSession
	}
	return chat.HistoryOutput{Turns: uc.sessions.Get(sc.SessionID).Turns()}, nil
}

// Reset discards the session's conversation.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return chat.ErrMissingSession
	}
	uc.sessions.Delete(sc.SessionID)
	uc.l.Infof(ctx, "chat.usecase.Reset: session=%s cleared", sc.SessionID)
	return nil
}
