package usecase

import (
	"fmt"

	"ai-chat-bot/internal/chat"
	"ai-chat-bot/pkg/placeholder"
)

const (
	ImageReplyText   = "[Image generated]"
	DiagramReplyText = "[ER diagram generated with Mermaid]"

	// MermaidMIMEType has no IANA registration; the UI only checks the kind.
	MermaidMIMEType = "text/vnd.mermaid"
)

// ERDiagram is the fixed diagram returned for every diagram request.
const ERDiagram = `erDiagram
    CUSTOMER ||--o{ ORDER : places
    ORDER ||--|{ LINE-ITEM : contains
    CUSTOMER }|..|{ DELIVERY-ADDRESS : uses`

func (uc *implUseCase) imageTurn() (chat.Turn, error) {
	data, err := placeholder.PNG(placeholder.DefaultWidth, placeholder.DefaultHeight, placeholder.DefaultColor)
	if err != nil {
		return chat.Turn{}, fmt.Errorf("image placeholder: %w", err)
	}

	return uc.newTurn(chat.RoleAssistant, ImageReplyText, &chat.Attachment{
		Kind:     chat.AttachmentImage,
		MIMEType: placeholder.MIMEType,
		Data:     placeholder.DataURI(data),
	}), nil
}

func (uc *implUseCase) diagramTurn() chat.Turn {
	return uc.newTurn(chat.RoleAssistant, DiagramReplyText, &chat.Attachment{
		Kind:     chat.AttachmentDiagram,
		MIMEType: MermaidMIMEType,
		Data:     ERDiagram,
	})
}
