package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-ai-agent/internal/chat"
	chatHTTP "voice-ai-agent/internal/chat/delivery/http"
	"voice-ai-agent/internal/middleware"
	"voice-ai-agent/internal/model"
	"voice-ai-agent/pkg/log"
)

type mockUseCase struct {
	chatTurn   func(ctx context.Context, input chat.ChatTurnInput) (chat.ChatTurnOutput, error)
	history    func(ctx context.Context, sessionID string) (chat.HistoryOutput, error)
	synthesize func(ctx context.Context, input chat.SynthesizeInput) (chat.SynthesizeOutput, error)
}

func (m *mockUseCase) ChatTurn(ctx context.Context, input chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
	return m.chatTurn(ctx, input)
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	return m.history(ctx, sessionID)
}

func (m *mockUseCase) Synthesize(ctx context.Context, input chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
	return m.synthesize(ctx, input)
}

func newTestRouter(t *testing.T, uc chat.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{})
	chatHTTP.RegisterRoutes(router.Group(""), chatHTTP.New(log.NewNop(), uc), mw)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return body
}

func multipartAudio(t *testing.T, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio", "clip.webm")
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write form: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close form: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{synthesize: func(_ context.Context, input chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
			if input.Text != "hello" {
				t.Errorf("unexpected text: %q", input.Text)
			}
			return chat.SynthesizeOutput{AudioURL: "https://audio.example/clip.mp3"}, nil
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"text":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["audio_url"] != "https://audio.example/clip.mp3" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("Empty Text Is 400", func(t *testing.T) {
		uc := &mockUseCase{synthesize: func(context.Context, chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
			return chat.SynthesizeOutput{}, chat.ErrEmptyText
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"text":""}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["detail"] != "Text is required" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("Malformed JSON Is 400", func(t *testing.T) {
		uc := &mockUseCase{synthesize: func(context.Context, chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
			t.Error("usecase must not be called for malformed input")
			return chat.SynthesizeOutput{}, nil
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"text":`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Vendor Failure Is 502", func(t *testing.T) {
		uc := &mockUseCase{synthesize: func(context.Context, chat.SynthesizeInput) (chat.SynthesizeOutput, error) {
			return chat.SynthesizeOutput{}, chat.ErrSynthesisUnavailable
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"text":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["detail"] != "TTS service unavailable" {
			t.Errorf("unexpected body: %v", body)
		}
	})
}

func TestHistory(t *testing.T) {
	t.Run("Returns Session Messages", func(t *testing.T) {
		uc := &mockUseCase{history: func(_ context.Context, sessionID string) (chat.HistoryOutput, error) {
			return chat.HistoryOutput{
				SessionID: sessionID,
				Messages: []model.Message{
					{Role: model.RoleUser, Content: "hello"},
					{Role: model.RoleAssistant, Content: "hi there"},
				},
			}, nil
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/agent/history/s1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["session_id"] != "s1" {
			t.Errorf("unexpected session id: %v", body["session_id"])
		}
		messages, ok := body["messages"].([]any)
		if !ok || len(messages) != 2 {
			t.Fatalf("unexpected messages: %v", body["messages"])
		}
	})

	t.Run("Empty History Marshals As Array", func(t *testing.T) {
		uc := &mockUseCase{history: func(_ context.Context, sessionID string) (chat.HistoryOutput, error) {
			return chat.HistoryOutput{SessionID: sessionID}, nil
		}}
		router := newTestRouter(t, uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/agent/history/s1", nil))

		if !strings.Contains(w.Body.String(), `"messages":[]`) {
			t.Errorf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestChat(t *testing.T) {
	t.Run("Happy Path", func(t *testing.T) {
		uc := &mockUseCase{chatTurn: func(_ context.Context, input chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
			if input.SessionID != "s1" || len(input.Audio) == 0 {
				t.Errorf("unexpected input: %+v", input)
			}
			return chat.ChatTurnOutput{
				SessionID:       input.SessionID,
				TranscribedText: "hello",
				Reply:           "hi there",
				AudioURL:        "https://audio.example/clip.mp3",
				History: []model.Message{
					{Role: model.RoleUser, Content: "hello"},
					{Role: model.RoleAssistant, Content: "hi there"},
				},
			}, nil
		}}
		router := newTestRouter(t, uc)

		buf, contentType := multipartAudio(t, []byte("pcm-bytes"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/agent/chat/s1", buf)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["session_id"] != "s1" || body["transcribed_text"] != "hello" ||
			body["llm_response"] != "hi there" || body["audio_url"] != "https://audio.example/clip.mp3" {
			t.Errorf("unexpected body: %v", body)
		}
		if _, present := body["error"]; present {
			t.Errorf("error field must be omitted on success: %v", body)
		}
	})

	t.Run("Transcription Failure Shape", func(t *testing.T) {
		uc := &mockUseCase{chatTurn: func(_ context.Context, input chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
			return chat.ChatTurnOutput{
				SessionID:           input.SessionID,
				Reply:               "I'm having trouble connecting right now. Please try again later.",
				AudioURL:            "https://audio.example/fallback.mp3",
				TranscriptionFailed: true,
			}, nil
		}}
		router := newTestRouter(t, uc)

		buf, contentType := multipartAudio(t, []byte("pcm-bytes"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/agent/chat/s1", buf)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("degraded turn should be 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != "STT failed" {
			t.Errorf("expected error marker, got %v", body["error"])
		}
		if body["transcribed_text"] != "" {
			t.Errorf("expected empty transcript, got %v", body["transcribed_text"])
		}
		if history, ok := body["history"].([]any); !ok || len(history) != 0 {
			t.Errorf("expected empty history array, got %v", body["history"])
		}
	})

	t.Run("Missing Audio Is 400", func(t *testing.T) {
		uc := &mockUseCase{chatTurn: func(context.Context, chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
			t.Error("usecase must not be called without audio")
			return chat.ChatTurnOutput{}, nil
		}}
		router := newTestRouter(t, uc)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.Close()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/agent/chat/s1", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Audio Is 400", func(t *testing.T) {
		uc := &mockUseCase{chatTurn: func(context.Context, chat.ChatTurnInput) (chat.ChatTurnOutput, error) {
			t.Error("usecase must not be called with empty audio")
			return chat.ChatTurnOutput{}, nil
		}}
		router := newTestRouter(t, uc)

		buf, contentType := multipartAudio(t, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/agent/chat/s1", buf)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
