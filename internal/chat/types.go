package chat

import (
	"time"

	"ai-chat-bot/internal/router"
)

// Role is the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AttachmentKind tells the UI how to render an attachment.
type AttachmentKind string

const (
	AttachmentImage   AttachmentKind = "image"   // Data is a data: URI
	AttachmentDiagram AttachmentKind = "diagram" // Data is Mermaid source
)

// Attachment is static content produced instead of a model reply.
type Attachment struct {
	Kind     AttachmentKind `json:"kind"`
	MIMEType string         `json:"mime_type"`
	Data     string         `json:"data"`
}

// Turn is one message in the conversation.
type Turn struct {
	ID         string
	Role       Role
	Content    string
	Attachment *Attachment
	CreatedAt  time.Time
}

// --- UseCase Inputs ---

type HandleInput struct {
	Prompt string
}

// --- UseCase Outputs ---

// HandleOutput describes one dispatched prompt.
// AssistantTurn is nil when the completion call failed.
type HandleOutput struct {
	UserTurn      Turn
	AssistantTurn *Turn
	Intent        router.Intent
}

type HistoryOutput struct {
	Turns []Turn
}
