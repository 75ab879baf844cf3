package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voice-ai-agent/internal/chat"
)

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text Rejected", func(t *testing.T) {
		f := newFixture(t, sttReturning(""), llmReturning(""),
			ttsReturning("https://audio.example/clip.mp3"), defaultCfg)

		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := f.uc.Synthesize(ctx, chat.SynthesizeInput{Text: text})
			if !errors.Is(err, chat.ErrEmptyText) {
				t.Errorf("text %q: expected ErrEmptyText, got %v", text, err)
			}
		}
	})

	t.Run("Vendor Failure Surfaces As Unavailable", func(t *testing.T) {
		tts := &mockTTS{generate: func(context.Context, string, string) (string, error) {
			return "", errors.New("murf 502")
		}}
		f := newFixture(t, sttReturning(""), llmReturning(""), tts, defaultCfg)

		_, err := f.uc.Synthesize(ctx, chat.SynthesizeInput{Text: "hello"})
		if !errors.Is(err, chat.ErrSynthesisUnavailable) {
			t.Errorf("expected ErrSynthesisUnavailable, got %v", err)
		}
	})

	t.Run("Voice And Text Passed Through", func(t *testing.T) {
		var gotText, gotVoice string
		tts := &mockTTS{generate: func(_ context.Context, text, voiceID string) (string, error) {
			gotText, gotVoice = text, voiceID
			return "https://audio.example/clip.mp3", nil
		}}
		f := newFixture(t, sttReturning(""), llmReturning(""), tts, defaultCfg)

		out, err := f.uc.Synthesize(ctx, chat.SynthesizeInput{Text: "  hello world  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AudioURL != "https://audio.example/clip.mp3" {
			t.Errorf("unexpected audio url: %q", out.AudioURL)
		}
		if gotText != "hello world" {
			t.Errorf("expected trimmed text, got %q", gotText)
		}
		if gotVoice != defaultCfg.VoiceID {
			t.Errorf("expected voice %q, got %q", defaultCfg.VoiceID, gotVoice)
		}
	})

	t.Run("Long Text Clipped At Word Boundary", func(t *testing.T) {
		cfg := defaultCfg
		cfg.TTSCharLimit = 20

		var gotText string
		tts := &mockTTS{generate: func(_ context.Context, text, _ string) (string, error) {
			gotText = text
			return "https://audio.example/clip.mp3", nil
		}}
		f := newFixture(t, sttReturning(""), llmReturning(""), tts, cfg)

		if _, err := f.uc.Synthesize(ctx, chat.SynthesizeInput{Text: "alpha beta gamma delta epsilon"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotText != "alpha beta gamma..." {
			t.Errorf("unexpected clipped text: %q", gotText)
		}
		if strings.Contains(strings.TrimSuffix(gotText, "..."), "gamm ") {
			t.Errorf("clip split a word: %q", gotText)
		}
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, sttReturning("hello"), llmReturning("hi there"),
		ttsReturning("https://audio.example/clip.mp3"), defaultCfg)

	t.Run("Unknown Session Is Empty", func(t *testing.T) {
		out, err := f.uc.History(ctx, "fresh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID != "fresh" || len(out.Messages) != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Returns Persisted Turns", func(t *testing.T) {
		if _, err := f.uc.ChatTurn(ctx, chat.ChatTurnInput{SessionID: "s1", Audio: []byte("pcm")}); err != nil {
			t.Fatalf("turn failed: %v", err)
		}

		out, err := f.uc.History(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Messages) != 2 || out.Messages[0].Content != "hello" || out.Messages[1].Content != "hi there" {
			t.Errorf("unexpected history: %+v", out.Messages)
		}
	})
}
