package http

import (
	"embed"
	"html/template"

	"ai-chat-bot/config"
	"ai-chat-bot/internal/chat"
	"ai-chat-bot/pkg/log"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "chat.html"

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	// Browser page
	Page(c *gin.Context)
	Submit(c *gin.Context)
	ResetPage(c *gin.Context)

	// JSON API
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	ClearMessages(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   chat.UseCase
	ui   config.UIConfig
	tmpl *template.Template
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, ui config.UIConfig) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		ui:   ui,
		tmpl: template.Must(template.New(pageTemplate).ParseFS(templateFS, "templates/"+pageTemplate)),
	}
}
