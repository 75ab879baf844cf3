package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"voice-ai-agent/internal/model"
)

const (
	maxSessionKeyLen  = 120
	defaultSessionKey = "session"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SafeSessionID normalizes a caller-supplied session identifier into a
// filesystem-safe storage key. The original identifier remains the cache and
// API-visible key.
func SafeSessionID(sessionID string) string {
	safe := unsafeKeyChars.ReplaceAllString(strings.TrimSpace(sessionID), "_")
	if len(safe) > maxSessionKeyLen {
		safe = safe[:maxSessionKeyLen]
	}
	if safe == "" {
		return defaultSessionKey
	}
	return safe
}

func (s *Store) recordPath(sessionID string) string {
	return filepath.Join(s.dir, SafeSessionID(sessionID)+".json")
}

// readRecord loads the durable record for a session. A missing file yields
// nil messages; an unparseable file yields ErrCorruptRecord. A bare message
// array is accepted alongside the record object for old files.
func (s *Store) readRecord(sessionID string) ([]model.Message, error) {
	path := s.recordPath(sessionID)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: read %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err == nil && rec.Messages != nil {
		return rec.Messages, nil
	}

	var legacy []model.Message
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return legacy, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrCorruptRecord, path)
}

// writeRecord persists the full trimmed history. The record is written to a
// temp path, synced, and atomically renamed over the target so a crash
// mid-write never exposes a partial file.
func (s *Store) writeRecord(sessionID string, messages []model.Message) error {
	path := s.recordPath(sessionID)

	if messages == nil {
		messages = []model.Message{}
	}
	rec := Record{
		SessionID: sessionID,
		Messages:  messages,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("history: marshal record for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("history: open %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("history: write %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("history: sync %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("history: close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("history: rename %s: %w", tmp, err)
	}
	return nil
}
