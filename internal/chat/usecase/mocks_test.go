package usecase_test

import (
	"context"
	"testing"

	"voice-ai-agent/internal/chat"
	"voice-ai-agent/internal/chat/usecase"
	"voice-ai-agent/internal/history"
	"voice-ai-agent/pkg/gemini"
	"voice-ai-agent/pkg/log"
)

type mockSTT struct {
	transcribe func(ctx context.Context, audio []byte) (string, error)
}

func (m *mockSTT) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return m.transcribe(ctx, audio)
}

type mockLLM struct {
	generateContent func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

func (m *mockLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.generateContent(ctx, req)
}

func (m *mockLLM) Model() string { return "test-model" }

type mockTTS struct {
	generate func(ctx context.Context, text, voiceID string) (string, error)
}

func (m *mockTTS) Generate(ctx context.Context, text, voiceID string) (string, error) {
	return m.generate(ctx, text, voiceID)
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

func sttReturning(text string) *mockSTT {
	return &mockSTT{transcribe: func(context.Context, []byte) (string, error) {
		return text, nil
	}}
}

func llmReturning(text string) *mockLLM {
	return &mockLLM{generateContent: func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
		return textResponse(text), nil
	}}
}

func ttsReturning(url string) *mockTTS {
	return &mockTTS{generate: func(context.Context, string, string) (string, error) {
		return url, nil
	}}
}

type fixture struct {
	uc    chat.UseCase
	store *history.Store
}

func newFixture(t *testing.T, stt *mockSTT, llm *mockLLM, tts *mockTTS, cfg usecase.Config) fixture {
	t.Helper()
	store, err := history.New(log.NewNop(), history.Config{Dir: t.TempDir(), Limit: 200})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	uc := usecase.New(log.NewNop(), stt, llm, tts, store, history.NewLockRegistry(), cfg)
	return fixture{uc: uc, store: store}
}
