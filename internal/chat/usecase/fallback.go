package usecase

import "context"

// speakOrFallback synthesizes speech for the reply; on vendor failure it
// degrades to the cached fallback clip.
func (uc *implUseCase) speakOrFallback(ctx context.Context, text string) string {
	audioURL, err := uc.tts.Generate(ctx, text, uc.cfg.VoiceID)
	if err != nil {
		uc.l.Warnf(ctx, "chat: synthesis failed, using fallback audio: %v", err)
		return uc.fallbackAudioURL(ctx)
	}
	return audioURL
}

// fallbackAudioURL returns the process-wide fallback audio clip, synthesized
// lazily from the fixed fallback message. Concurrent first computations are
// collapsed by singleflight. Only a successful synthesis is cached; a failed
// attempt returns the inert placeholder so a later call can retry.
func (uc *implUseCase) fallbackAudioURL(ctx context.Context) string {
	uc.fallbackAudio.mu.RLock()
	cached := uc.fallbackAudio.url
	uc.fallbackAudio.mu.RUnlock()
	if cached != "" {
		return cached
	}

	v, _, _ := uc.fallbackAudio.group.Do("fallback-audio", func() (any, error) {
		audioURL, err := uc.tts.Generate(ctx, FallbackMessage, uc.cfg.VoiceID)
		if err != nil {
			uc.l.Errorf(ctx, "chat: fallback audio synthesis failed: %v", err)
			return PlaceholderAudioURL, nil
		}
		uc.fallbackAudio.mu.Lock()
		uc.fallbackAudio.url = audioURL
		uc.fallbackAudio.mu.Unlock()
		return audioURL, nil
	})
	return v.(string)
}
