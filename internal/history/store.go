package history

import (
	"context"
	"errors"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"voice-ai-agent/internal/model"
	"voice-ai-agent/pkg/log"
)

const defaultCacheSize = 1024

// Store keeps per-session message histories in a bounded in-memory cache in
// front of one durable JSON file per session. Cached slices are treated as
// immutable; AppendAndPersist copies before extending.
//
// Get is safe for concurrent use. AppendAndPersist is not internally
// synchronized — callers must hold the session's lock from a LockRegistry.
type Store struct {
	l     log.Logger
	dir   string
	limit int
	cache *lru.Cache[string, []model.Message]
	loads singleflight.Group
}

// New creates the store and ensures the history directory exists.
func New(l log.Logger, cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("history: dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: create dir %s: %w", cfg.Dir, err)
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, []model.Message](size)
	if err != nil {
		return nil, fmt.Errorf("history: create cache: %w", err)
	}

	return &Store{
		l:     l,
		dir:   cfg.Dir,
		limit: cfg.Limit,
		cache: cache,
	}, nil
}

// Get returns the session's history, loading it from durable storage on
// first access. Concurrent first loads for the same session are collapsed
// into a single disk read. A corrupt record is logged and served as empty so
// a bad file cannot take a session down; the next persist overwrites it.
func (s *Store) Get(ctx context.Context, sessionID string) ([]model.Message, error) {
	if messages, ok := s.cache.Get(sessionID); ok {
		return messages, nil
	}

	v, err, _ := s.loads.Do(sessionID, func() (any, error) {
		messages, err := s.readRecord(sessionID)
		if err != nil {
			if !errors.Is(err, ErrCorruptRecord) {
				return nil, err
			}
			s.l.Errorf(ctx, "history: corrupt record for session %q, starting empty: %v", sessionID, err)
			messages = nil
		}
		s.cache.Add(sessionID, messages)
		return messages, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Message), nil
}

// AppendAndPersist appends the new messages, trims to the retention limit,
// durably persists the result, updates the cache, and returns the trimmed
// history. The cache is only updated after a successful disk write so cache
// and disk never diverge. Callers must hold the session's lock.
func (s *Store) AppendAndPersist(ctx context.Context, sessionID string, newMessages []model.Message) ([]model.Message, error) {
	current, ok := s.cache.Get(sessionID)
	if !ok {
		var err error
		current, err = s.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
	}

	next := make([]model.Message, 0, len(current)+len(newMessages))
	next = append(next, current...)
	next = append(next, newMessages...)
	next = s.trim(next)

	if err := s.writeRecord(sessionID, next); err != nil {
		return nil, err
	}
	s.cache.Add(sessionID, next)
	return next, nil
}

// trim keeps only the most recent limit entries.
func (s *Store) trim(messages []model.Message) []model.Message {
	if s.limit > 0 && len(messages) > s.limit {
		return messages[len(messages)-s.limit:]
	}
	return messages
}
