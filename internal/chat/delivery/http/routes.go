package http

import (
	"ai-chat-bot/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes maps the server-rendered chat page.
func RegisterPageRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/", mw.Session(), h.Page)
	rg.POST("/", mw.Session(), h.Submit)
	rg.POST("/chat/reset", mw.Session(), h.ResetPage)
}

// RegisterRoutes maps the JSON API under the given group (e.g. /api/v1/chat).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	messages := rg.Group("/messages")
	{
		messages.POST("", mw.Session(), h.SendMessage)
		messages.GET("", mw.Session(), h.ListMessages)
		messages.DELETE("", mw.Session(), h.ClearMessages)
	}
}
