package usecase

import (
	"time"

	"ai-chat-bot/internal/router"
	"ai-chat-bot/internal/session"
	"ai-chat-bot/pkg/llmprovider"
	pkgLog "ai-chat-bot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	router   router.Router
	sessions *session.Store
	now      func() time.Time
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	r router.Router,
	sessions *session.Store,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		router:   r,
		sessions: sessions,
		now:      time.Now,
	}
}
