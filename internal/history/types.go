package history

import (
	"time"

	"voice-ai-agent/internal/model"
)

// Record is the durable per-session history document.
type Record struct {
	SessionID string          `json:"session_id"`
	Messages  []model.Message `json:"messages"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Config configures the history store.
type Config struct {
	// Dir is the directory holding one JSON record per session.
	Dir string
	// Limit caps messages kept per session; 0 disables trimming.
	Limit int
	// CacheSize bounds the number of sessions cached in memory.
	CacheSize int
}
