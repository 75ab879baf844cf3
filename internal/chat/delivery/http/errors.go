package http

import (
	"errors"
	"net/http"

	"voice-ai-agent/internal/chat"
)

// mapError translates domain errors into an HTTP status and a generic
// message. Vendor error details never reach the caller.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrEmptyText):
		return http.StatusBadRequest, "Text is required"
	case errors.Is(err, chat.ErrSynthesisUnavailable):
		return http.StatusBadGateway, "TTS service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
