package http

import (
	"errors"
	"net/http"

	"ai-chat-bot/internal/chat"
	pkgErrors "ai-chat-bot/pkg/errors"
)

var errMissingPrompt = pkgErrors.NewHTTPError(http.StatusBadRequest, "prompt is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, chat.ErrEmptyPrompt.Error())
	case errors.Is(err, chat.ErrMissingSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, chat.ErrMissingSession.Error())
	case errors.Is(err, chat.ErrCompletionFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// pageError is the text shown in the inline error bubble.
func pageError(err error) string {
	return "Error: " + err.Error()
}
