package test

import (
	"ai-chat-bot/internal/router"
	pkgLog "ai-chat-bot/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	model string,
) Handler {
	return &handler{
		l:      l,
		router: router,
		model:  model,
	}
}
