package chat

import "context"

// UseCase defines the business logic interface for the voice chat domain.
type UseCase interface {
	// ChatTurn runs one full voice turn: transcribe the audio, generate a
	// reply against the session history, persist the exchange, and
	// synthesize speech for the reply. Vendor failures degrade to fallback
	// content instead of failing the turn.
	ChatTurn(ctx context.Context, input ChatTurnInput) (ChatTurnOutput, error)

	// History returns the session's full persisted history.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)

	// Synthesize converts text to speech, bypassing session state.
	Synthesize(ctx context.Context, input SynthesizeInput) (SynthesizeOutput, error)
}
