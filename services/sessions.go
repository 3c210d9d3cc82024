package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle quote session survives.
const DefaultSessionTTL = 12 * time.Hour

type sessionEntry struct {
	selection *Selection
	lastSeen  time.Time
}

// SessionStore keeps in-memory quote selections keyed by opaque session id.
// Sessions expire after sitting idle for the TTL; every Get refreshes the
// idle timer. Nothing is persisted.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration

	now func() time.Time
}

// NewSessionStore creates a store with the given idle TTL. A non-positive
// TTL falls back to DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the live selection for a session id, refreshing its idle
// timer. Expired sessions are removed and reported as missing.
func (s *SessionStore) Get(id string) (*Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.selection, true
}

// Create starts a fresh session over the catalog and returns its id.
// Expired sessions are pruned on the way, keeping the map bounded by
// active traffic.
func (s *SessionStore) Create(catalog *Catalog) (string, *Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}

	id := uuid.NewString()
	selection := NewSelection(catalog)
	s.sessions[id] = &sessionEntry{selection: selection, lastSeen: now}
	return id, selection
}

// Delete removes a session if present.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of stored sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
