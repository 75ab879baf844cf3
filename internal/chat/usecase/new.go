package usecase

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"voice-ai-agent/internal/chat"
	"voice-ai-agent/internal/history"
	"voice-ai-agent/pkg/assemblyai"
	"voice-ai-agent/pkg/gemini"
	pkgLog "voice-ai-agent/pkg/log"
	"voice-ai-agent/pkg/murf"
)

// Config carries the turn-level limits and voice selection.
type Config struct {
	PromptCharBudget int
	TTSCharLimit     int
	VoiceID          string
}

type implUseCase struct {
	l     pkgLog.Logger
	stt   assemblyai.IAssemblyAI
	llm   gemini.IGemini
	tts   murf.IMurf
	store *history.Store
	locks *history.LockRegistry
	cfg   Config

	fallbackAudio fallbackAudioCache
}

var _ chat.UseCase = (*implUseCase)(nil)

// fallbackAudioCache lazily holds the one process-wide fallback audio clip.
// Recomputing it after a race or vendor recovery is benign.
type fallbackAudioCache struct {
	group singleflight.Group
	mu    sync.RWMutex
	url   string
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	stt assemblyai.IAssemblyAI,
	llm gemini.IGemini,
	tts murf.IMurf,
	store *history.Store,
	locks *history.LockRegistry,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:     l,
		stt:   stt,
		llm:   llm,
		tts:   tts,
		store: store,
		locks: locks,
		cfg:   cfg,
	}
}
