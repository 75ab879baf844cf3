package chat

import "voice-ai-agent/internal/model"

// ChatTurnInput is the input for one voice chat turn.
type ChatTurnInput struct {
	SessionID string
	Audio     []byte
}

// ChatTurnOutput is the result of one voice chat turn. When transcription
// fails, TranscriptionFailed is set, TranscribedText is empty, Reply carries
// the fixed fallback text, and History is the pre-existing history.
type ChatTurnOutput struct {
	SessionID           string
	TranscribedText     string
	Reply               string
	AudioURL            string
	History             []model.Message
	TranscriptionFailed bool
}

// HistoryOutput is the result of a history read.
type HistoryOutput struct {
	SessionID string
	Messages  []model.Message
}

// SynthesizeInput is the input for the standalone synthesis operation.
type SynthesizeInput struct {
	Text string
}

// SynthesizeOutput is the result of the standalone synthesis operation.
type SynthesizeOutput struct {
	AudioURL string
}
