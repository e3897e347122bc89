package http

import (
	"ai-chat-bot/internal/chat"
	"ai-chat-bot/internal/middleware"
	"ai-chat-bot/internal/model"

	"github.com/gin-gonic/gin"
)

// processSendReq binds and validates the JSON send-message body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingPrompt
	}
	return req, req.validate()
}

// processPageForm binds the form posted by the chat page.
func (h *handler) processPageForm(c *gin.Context) (pageForm, error) {
	var req pageForm
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// scope returns the session scope set by the Session middleware.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok || sc.SessionID == "" {
		return model.Scope{}, chat.ErrMissingSession
	}
	return sc, nil
}
