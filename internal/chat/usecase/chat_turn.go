package usecase

import (
	"context"
	"strings"

	"voice-ai-agent/internal/chat"
	"voice-ai-agent/internal/model"
	"voice-ai-agent/internal/prompt"
	"voice-ai-agent/pkg/gemini"
)

// ChatTurn runs one voice chat turn. Transcription and synthesis happen
// outside the session lock — they are pure vendor I/O and may be slow. Only
// the read-modify-write of history (generation included, since the reply
// depends on the history read) runs under the lock.
func (uc *implUseCase) ChatTurn(ctx context.Context, input chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
	userText, err := uc.stt.Transcribe(ctx, input.Audio)
	if err != nil {
		uc.l.Warnf(ctx, "chat: transcription failed for session %q: %v", input.SessionID, err)
		return uc.transcriptionFailedOutput(ctx, input.SessionID), nil
	}

	reply, newHistory, err := uc.generateAndPersist(ctx, input.SessionID, userText)
	if err != nil {
		return chat.ChatTurnOutput{}, err
	}

	audioURL := uc.speakOrFallback(ctx, reply)

	return chat.ChatTurnOutput{
		SessionID:       input.SessionID,
		TranscribedText: userText,
		Reply:           reply,
		AudioURL:        audioURL,
		History:         newHistory,
	}, nil
}

// generateAndPersist holds the session lock around the history
// read-modify-write: read, generate, clip, append both turn messages as one
// atomic persist. The lock is released on all exit paths.
func (uc *implUseCase) generateAndPersist(ctx context.Context, sessionID, userText string) (string, []model.Message, error) {
	mu := uc.locks.Acquire(sessionID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	reply := uc.generateReply(ctx, existing, userText)
	reply = clipForTTS(reply, uc.cfg.TTSCharLimit)

	newHistory, err := uc.store.AppendAndPersist(ctx, sessionID, []model.Message{
		{Role: model.RoleUser, Content: userText},
		{Role: model.RoleAssistant, Content: reply},
	})
	if err != nil {
		return "", nil, err
	}
	return reply, newHistory, nil
}

// generateReply calls the generation backend with the budget-bounded prompt.
// Backend failure or an empty result substitutes the fixed fallback text.
func (uc *implUseCase) generateReply(ctx context.Context, existing []model.Message, userText string) string {
	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: SystemInstructions}}},
		Contents:          prompt.Build(existing, userText, uc.cfg.PromptCharBudget),
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat: generation failed: %v", err)
		return FallbackMessage
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		uc.l.Warnf(ctx, "chat: generation returned empty reply, using fallback")
		return FallbackMessage
	}
	return text
}

// transcriptionFailedOutput builds the degraded response for a failed
// transcription: nothing is persisted and the session lock is never touched.
// The history read is best effort.
func (uc *implUseCase) transcriptionFailedOutput(ctx context.Context, sessionID string) chat.ChatTurnOutput {
	existing, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "chat: best-effort history read failed for session %q: %v", sessionID, err)
		existing = nil
	}

	return chat.ChatTurnOutput{
		SessionID:           sessionID,
		Reply:               FallbackMessage,
		AudioURL:            uc.fallbackAudioURL(ctx),
		History:             existing,
		TranscriptionFailed: true,
	}
}
