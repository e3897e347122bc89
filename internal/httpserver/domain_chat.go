package httpserver

import (
	"context"

	chatHTTP "ai-chat-bot/internal/chat/delivery/http"
	"ai-chat-bot/internal/middleware"
)

// setupChatDomain registers the chat page and the chat JSON API.
func (srv HTTPServer) setupChatDomain(ctx context.Context, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC, srv.ui)

	// GET /, POST /, POST /chat/reset
	chatHTTP.RegisterPageRoutes(&srv.gin.RouterGroup, h, mw)

	// /api/v1/chat/messages
	chatHTTP.RegisterRoutes(srv.gin.Group("/api/v1/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
