package history

import "sync"

// LockRegistry hands out one mutex per session identifier. The same
// identifier always maps to the same mutex for the process lifetime; locks
// for distinct sessions never contend. Unused locks are never reclaimed —
// growth is bounded by the number of distinct sessions seen.
type LockRegistry struct {
	locks sync.Map // session id -> *sync.Mutex
}

// NewLockRegistry creates an empty lock registry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{}
}

// Acquire returns the mutex for the session, creating it on first use.
// Safe under concurrent first creation: LoadOrStore guarantees all callers
// converge on a single mutex per identifier.
func (r *LockRegistry) Acquire(sessionID string) *sync.Mutex {
	if mu, ok := r.locks.Load(sessionID); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
