package http

import (
	"errors"
	"net/http"

	"ai-chat-bot/internal/chat"
	"ai-chat-bot/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Page renders the chat page with the session's history.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.render(c, nil, pageError(err))
		return
	}

	h.render(c, out.Turns, "")
}

// Submit dispatches the posted prompt and re-renders the page.
// A failed completion shows up as an inline error below the user's message.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	errMsg := ""
	form, err := h.processPageForm(c)
	if err == nil {
		_, err = h.uc.Handle(ctx, sc, form.toInput())
	}
	switch {
	case err == nil, errors.Is(err, chat.ErrEmptyPrompt):
		// Empty input is ignored, like an empty chat box.
	default:
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		errMsg = pageError(err)
	}

	out, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.render(c, nil, pageError(err))
		return
	}

	h.render(c, out.Turns, errMsg)
}

// ResetPage starts a new conversation and sends the browser back to the page.
func (h *handler) ResetPage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) render(c *gin.Context, turns []chat.Turn, errMsg string) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     pageTemplate,
		Data:     h.newPageView(turns, errMsg),
	})
}

// SendMessage godoc
// @Summary     Send a chat message
// @Description Routes the prompt to the image placeholder, the ER diagram or the language model and records both turns.
// @Description When the model call fails the user turn is still recorded and returned with status 502.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Prompt"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Completion failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Handle(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		var data map[string]interface{}
		if errors.Is(err, chat.ErrCompletionFailed) {
			data = map[string]interface{}{"user_turn": newTurnResp(output.UserTurn)}
		}
		response.Error(c, h.mapError(err), data)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// ListMessages godoc
// @Summary     List chat messages
// @Description Returns the current session's turns, oldest first.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearMessages godoc
// @Summary     Start a new chat
// @Description Discards the current session's conversation.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [DELETE]
func (h *handler) ClearMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
