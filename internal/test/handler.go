package test

import (
	"ai-chat-bot/internal/router"
	pkgLog "ai-chat-bot/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
	model  string
}

// HandleClassify is a test endpoint that shows how a prompt would be routed
// @Summary Test prompt routing
// @Description Classify a prompt without recording it or calling the language model
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Prompt to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, ClassifyResponse{
			Success: false,
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	out := h.router.Classify(req.Text)

	resp := ClassifyResponse{
		Success:    true,
		Intent:     string(out.Intent),
		Keyword:    out.Keyword,
		CallsModel: out.Intent == router.IntentGeneralQuery,
		Text:       req.Text,
	}
	if resp.CallsModel {
		resp.Model = h.model
	}

	h.l.Infof(ctx, "%s: text=%q intent=%s keyword=%q",
		router.LogPrefixClassify, req.Text, out.Intent, out.Keyword)

	c.JSON(200, resp)
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(200, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
