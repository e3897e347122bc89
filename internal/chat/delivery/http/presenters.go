package http

import (
	"html/template"
	"strings"

	"ai-chat-bot/internal/chat"
	"ai-chat-bot/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errMissingPrompt
	}
	return nil
}

func (r sendReq) toInput() chat.HandleInput {
	return chat.HandleInput{Prompt: r.Prompt}
}

type pageForm struct {
	Prompt string `form:"prompt"`
}

func (r pageForm) toInput() chat.HandleInput {
	return chat.HandleInput{Prompt: r.Prompt}
}

// --- Response DTOs ---

type attachmentResp struct {
	Kind     string `json:"kind"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type turnResp struct {
	ID         string            `json:"id"`
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	Attachment *attachmentResp   `json:"attachment,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newTurnResp(t chat.Turn) turnResp {
	resp := turnResp{
		ID:        t.ID,
		Role:      string(t.Role),
		Content:   t.Content,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
	if t.Attachment != nil {
		resp.Attachment = &attachmentResp{
			Kind:     string(t.Attachment.Kind),
			MIMEType: t.Attachment.MIMEType,
			Data:     t.Attachment.Data,
		}
	}
	return resp
}

type sendResp struct {
	Intent        string    `json:"intent"`
	UserTurn      turnResp  `json:"user_turn"`
	AssistantTurn *turnResp `json:"assistant_turn,omitempty"`
}

func (h *handler) newSendResp(out chat.HandleOutput) sendResp {
	resp := sendResp{
		Intent:   string(out.Intent),
		UserTurn: newTurnResp(out.UserTurn),
	}
	if out.AssistantTurn != nil {
		a := newTurnResp(*out.AssistantTurn)
		resp.AssistantTurn = &a
	}
	return resp
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return historyResp{Turns: turns}
}

// --- Page view model ---

type turnView struct {
	Role    string
	Content string
	// Image is a data: URI produced server-side, so it is trusted.
	Image   template.URL
	Diagram string
}

type pageView struct {
	Title       string
	Icon        string
	IconHref    template.URL
	Description string
	Placeholder string
	Turns       []turnView
	Error       string
	HasDiagram  bool
}

func (h *handler) newPageView(turns []chat.Turn, errMsg string) pageView {
	view := pageView{
		Title:       h.ui.Title,
		Icon:        h.ui.Icon,
		IconHref:    iconHref(h.ui.Icon),
		Description: h.ui.Description,
		Placeholder: h.ui.Placeholder,
		Turns:       make([]turnView, 0, len(turns)),
		Error:       errMsg,
	}
	for _, t := range turns {
		tv := turnView{Role: string(t.Role), Content: t.Content}
		if t.Attachment != nil {
			switch t.Attachment.Kind {
			case chat.AttachmentImage:
				tv.Image = template.URL(t.Attachment.Data)
			case chat.AttachmentDiagram:
				tv.Diagram = t.Attachment.Data
				view.HasDiagram = true
			}
		}
		view.Turns = append(view.Turns, tv)
	}
	return view
}

// iconHref turns the page icon (usually an emoji) into an SVG favicon.
func iconHref(icon string) template.URL {
	if icon == "" {
		return ""
	}
	svg := "<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>" +
		template.HTMLEscapeString(icon) + "</text></svg>"
	return template.URL("data:image/svg+xml," + strings.ReplaceAll(svg, "#", "%23"))
}
