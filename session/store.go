package session

import (
	"sync"
	"time"
)

// CookieName is the cookie that carries the session identifier.
const CookieName = "storefront_session"

// Store keeps live sessions by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, if it is live.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session for id, creating a new one when id is
// empty or unknown. The returned session counts as active for eviction.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := st.Get(id); ok {
			s.Touch()
			return s
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if id != "" {
		if s, ok := st.sessions[id]; ok {
			s.Touch()
			return s
		}
	}
	s := NewSession()
	st.sessions[s.ID] = s
	return s
}

// Drop tears the session down and removes it from the store.
func (st *Store) Drop(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.Teardown()
	}
}

// Sweep tears down every session idle for longer than ttl and reports how
// many were dropped. Without it abandoned sessions would pile up for the
// life of the process.
func (st *Store) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, id)
			expired = append(expired, s)
		}
	}
	st.mu.Unlock()

	for _, s := range expired {
		s.Teardown()
	}
	return len(expired)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
