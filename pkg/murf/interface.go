package murf

import "context"

// IMurf defines the interface for the Murf speech synthesis client.
// Implementations are safe for concurrent use.
type IMurf interface {
	// Generate synthesizes speech for text with the given voice and returns
	// the generated audio file URL.
	Generate(ctx context.Context, text, voiceID string) (string, error)
}
