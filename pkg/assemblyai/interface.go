package assemblyai

import "context"

// IAssemblyAI defines the interface for the AssemblyAI transcription client.
// Implementations are safe for concurrent use.
type IAssemblyAI interface {
	// Transcribe uploads raw audio and blocks until a transcript is ready.
	// Returns ErrNoSpeech when the audio contains no recognizable speech.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
