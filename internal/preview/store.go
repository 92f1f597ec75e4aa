// Package preview serves generated frames over HTTP. Each client owns a
// session holding its own parameter state.
package preview

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/spiro"
)

// ErrSessionLimit is returned when the store is full.
var ErrSessionLimit = errors.New("preview: session limit reached")

// ============================================================
// Session Store
// ============================================================

// Session is one client's parameter state. State is not safe for
// concurrent use; hold the session lock while touching it.
type Session struct {
	ID      string
	Created time.Time

	mu    sync.Mutex
	state *spiro.State
}

// With runs fn with the session locked.
func (s *Session) With(fn func(*spiro.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Store holds the live sessions, up to a fixed limit.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	max      int
	newGen   func() *spiro.Generator
}

// NewStore creates a store holding at most limit sessions (0 = unlimited).
// Every session gets its own generator from newGen.
func NewStore(limit int, newGen func() *spiro.Generator) *Store {
	if newGen == nil {
		newGen = func() *spiro.Generator { return spiro.NewGenerator() }
	}
	return &Store{
		sessions: make(map[string]*Session),
		max:      limit,
		newGen:   newGen,
	}
}

// Create opens a session holding v.
func (s *Store) Create(v spiro.Vector) (*Session, error) {
	state := spiro.NewState(v.Family, s.newGen())
	if err := state.Replace(v); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		return nil, ErrSessionLimit
	}
	sess := &Session{
		ID:      uuid.NewString(),
		Created: time.Now(),
		state:   state,
	}
	s.sessions[sess.ID] = sess
	spiro.Logger().Info("preview: session opened", "id", sess.ID, "family", v.Family.String())
	return sess, nil
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete closes a session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	spiro.Logger().Info("preview: session closed", "id", id)
	return true
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
