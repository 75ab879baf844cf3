package http

import (
	"voice-ai-agent/internal/chat"
	"voice-ai-agent/internal/model"
)

// --- Request DTOs ---

type generateReq struct {
	Text string `json:"text"`
}

func (r generateReq) toInput() chat.SynthesizeInput {
	return chat.SynthesizeInput{Text: r.Text}
}

// --- Response DTOs ---

type generateResp struct {
	AudioURL string `json:"audio_url"`
}

func (h *handler) newGenerateResp(out chat.SynthesizeOutput) generateResp {
	return generateResp{AudioURL: out.AudioURL}
}

type historyResp struct {
	SessionID string          `json:"session_id"`
	Messages  []model.Message `json:"messages"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	return historyResp{
		SessionID: out.SessionID,
		Messages:  nonNilMessages(out.Messages),
	}
}

type chatResp struct {
	SessionID       string          `json:"session_id"`
	Error           string          `json:"error,omitempty"`
	TranscribedText string          `json:"transcribed_text"`
	LLMResponse     string          `json:"llm_response"`
	AudioURL        string          `json:"audio_url"`
	History         []model.Message `json:"history"`
}

func (h *handler) newChatResp(out chat.ChatTurnOutput) chatResp {
	resp := chatResp{
		SessionID:       out.SessionID,
		TranscribedText: out.TranscribedText,
		LLMResponse:     out.Reply,
		AudioURL:        out.AudioURL,
		History:         nonNilMessages(out.History),
	}
	if out.TranscriptionFailed {
		resp.Error = "STT failed"
	}
	return resp
}

// nonNilMessages keeps empty histories marshaling as [] rather than null.
func nonNilMessages(messages []model.Message) []model.Message {
	if messages == nil {
		return []model.Message{}
	}
	return messages
}
