package assemblyai

import "errors"

// ErrNoSpeech is returned when transcription succeeds but yields no text.
var ErrNoSpeech = errors.New("assemblyai: no speech detected in audio")
