package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-ai-agent/internal/chat"
)

// Generate godoc
// @Summary     Synthesize speech from text
// @Description Converts text to speech and returns the audio URL. Bypasses session state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Text to synthesize"
// @Success     200 {object} generateResp
// @Failure     400 {object} map[string]string "Empty text"
// @Failure     502 {object} map[string]string "Synthesis vendor unavailable"
// @Router      /generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Text is required"})
		return
	}

	output, err := h.uc.Synthesize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Synthesize: %v", err)
		status, detail := h.mapError(err)
		c.JSON(status, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusOK, h.newGenerateResp(output))
}

// History godoc
// @Summary     Fetch session history
// @Description Returns the full persisted message history for a session.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session identifier"
// @Success     200 {object} historyResp
// @Router      /agent/history/{session_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("session_id")

	output, err := h.uc.History(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		status, detail := h.mapError(err)
		c.JSON(status, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusOK, h.newHistoryResp(output))
}

// Chat godoc
// @Summary     Run one voice chat turn
// @Description Transcribes the uploaded audio, generates a reply against session history, persists the turn, and returns synthesized speech. Vendor failures degrade to fallback content with HTTP 200.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       session_id path string true "Session identifier"
// @Param       audio formData file true "Audio recording"
// @Success     200 {object} chatResp
// @Failure     400 {object} map[string]string "Missing or empty audio upload"
// @Router      /agent/chat/{session_id} [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("session_id")

	audio, err := h.processChatAudio(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	output, err := h.uc.ChatTurn(ctx, chat.ChatTurnInput{
		SessionID: sessionID,
		Audio:     audio,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ChatTurn: %v", err)
		status, detail := h.mapError(err)
		c.JSON(status, gin.H{"detail": detail})
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}
