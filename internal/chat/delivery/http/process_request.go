package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the synthesis request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processChatAudio extracts the uploaded audio bytes from the multipart form.
func (h *handler) processChatAudio(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return nil, fmt.Errorf("audio file is required: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open audio upload: %w", err)
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio upload: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio file is empty")
	}
	return audio, nil
}
