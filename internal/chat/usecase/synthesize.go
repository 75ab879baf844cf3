package usecase

import (
	"context"
	"strings"

	"voice-ai-agent/internal/chat"
)

// Synthesize converts text to speech, bypassing session state. This is the
// only operation that surfaces vendor failure as a hard error; vendor details
// are logged, never returned.
func (uc *implUseCase) Synthesize(ctx context.Context, input chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SynthesizeOutput{}, chat.ErrEmptyText
	}

	text = clipForTTS(text, uc.cfg.TTSCharLimit)

	audioURL, err := uc.tts.Generate(ctx, text, uc.cfg.VoiceID)
	if err != nil {
		uc.l.Errorf(ctx, "chat: synthesis failed: %v", err)
		return chat.SynthesizeOutput{}, chat.ErrSynthesisUnavailable
	}

	return chat.SynthesizeOutput{AudioURL: audioURL}, nil
}

// History returns the session's persisted history.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	messages, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{
		SessionID: sessionID,
		Messages:  messages,
	}, nil
}
