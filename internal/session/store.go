package session

import (
	"context"
	"sync"
	"time"

	"github.com/Sukanya41455/AccentChanger/internal/observability"
)

// Store is the registry of live sessions, keyed by session id. Sessions idle
// past the TTL are swept so abandoned browser tabs do not pile up.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates an empty session registry
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session in the initial state
func (st *Store) Create() *Session {
	s := New()

	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()

	observability.RecordSessionCreated()
	return s
}

// Get looks up a session by id
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete ends a session and drops it from the registry
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	if ok {
		delete(st.sessions, id)
	}
	st.mu.Unlock()

	if ok {
		s.closeWatchers()
		observability.RecordSessionClosed()
	}
	return ok
}

// Len reports the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep runs the TTL sweeper until the context is cancelled
func (st *Store) Sweep(ctx context.Context) {
	if st.ttl <= 0 {
		return
	}

	logger := observability.GetLogger()
	ticker := time.NewTicker(st.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range st.expired() {
				if st.Delete(id) {
					logger.Info().Str("session_id", id).Msg("Swept idle session")
				}
			}
		}
	}
}

func (st *Store) expired() []string {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.RLock()
	defer st.mu.RUnlock()

	var ids []string
	for id, s := range st.sessions {
		if s.LastActive().Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}
