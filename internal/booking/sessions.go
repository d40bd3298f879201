package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps live wizard sessions in memory. Sessions are never
// persisted; they expire after the configured idle TTL.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once

	now func() time.Time // overridable in tests
}

type sessionEntry struct {
	wizard    *Wizard
	expiresAt time.Time
}

// NewSessionStore creates a store whose sessions expire after ttl of
// inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		stop:     make(chan struct{}),
		now:      time.Now,
	}
}

// Put registers a wizard and returns its session id.
func (s *SessionStore) Put(w *Wizard) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{wizard: w, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return id
}

// Get returns the wizard for id and refreshes its TTL.
func (s *SessionStore) Get(id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.expiresAt = s.now().Add(s.ttl)
	return entry.wizard, nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartSweeper evicts expired sessions every interval until Close is called.
func (s *SessionStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *SessionStore) sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

// Close stops the sweeper goroutine.
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}
