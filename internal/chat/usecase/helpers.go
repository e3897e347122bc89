package usecase

import (
	"ai-chat-bot/internal/chat"

	"github.com/google/uuid"
)

func (uc *implUseCase) newTurn(role chat.Role, content string, att *chat.Attachment) chat.Turn {
	return chat.Turn{
		ID:         uuid.NewString(),
		Role:       role,
		Content:    content,
		Attachment: att,
		CreatedAt:  uc.now(),
	}
}
