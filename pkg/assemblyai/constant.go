package assemblyai

import "time"

const (
	// DefaultAPIURL is the AssemblyAI REST API endpoint.
	DefaultAPIURL = "https://api.assemblyai.com/v2"

	// DefaultPollInterval is the delay between transcript status polls.
	DefaultPollInterval = 1 * time.Second
)

// Transcript statuses returned by the API.
const (
	statusCompleted = "completed"
	statusError     = "error"
)
