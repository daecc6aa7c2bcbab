package session

import (
	"errors"
	"sync"
	"time"

	"github.com/skillcheck/skillcheck/internal/catalog"
)

// DefaultTTL is how long an idle session survives before Sweep evicts it.
const DefaultTTL = 2 * time.Hour

var ErrNotFound = errors.New("session not found")

// Registry holds in-flight sessions keyed by ID. Sessions idle past the TTL
// are evicted on every Create and Get, so a long-lived registry needs no
// separate janitor; Sweep is also exported for explicit cleanup.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create starts a new session and registers it.
func (r *Registry) Create(skill catalog.Skill, level catalog.Level, modality catalog.Modality) *Session {
	s := New(skill, level, modality)
	r.mu.Lock()
	r.sweepLocked()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get looks up a session and refreshes its idle timer. A session idle past
// the TTL is evicted and reported as not found.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.touch()
	return s, nil
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep evicts sessions idle longer than the TTL and returns how many were
// removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

func (r *Registry) sweepLocked() int {
	cutoff := time.Now().Add(-r.ttl)
	evicted := 0
	for id, s := range r.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len reports how many sessions are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
