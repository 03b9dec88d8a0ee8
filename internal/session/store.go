package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/smash-board/internal/outcome"
	"github.com/diewo77/smash-board/internal/profiles"
	"github.com/diewo77/smash-board/internal/selection"
)

// Store keeps sessions in memory with a sliding TTL.
type Store struct {
	source profiles.Source
	picker *outcome.Picker
	ttl    time.Duration
	clock  Clock
	max    int

	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

type entry struct {
	session   *Session
	expiresAt time.Time
}

// NewStore creates an empty store. Every new session loads from source and
// draws outcomes from picker.
func NewStore(source profiles.Source, picker *outcome.Picker, ttl time.Duration, clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	if picker == nil {
		picker = outcome.NewPicker(nil)
	}
	return &Store{
		source:   source,
		picker:   picker,
		ttl:      ttl,
		clock:    clock,
		sessions: make(map[uuid.UUID]*entry),
	}
}

// SetLimit caps the number of stored sessions. Zero or less means no cap.
func (s *Store) SetLimit(n int) {
	s.mu.Lock()
	s.max = n
	s.mu.Unlock()
}

// Create registers a new session. When the store is full, expired sessions
// are dropped first, then the session closest to expiry.
func (s *Store) Create() *Session {
	sess := newSession(uuid.New(), s.source, selection.NewHolder(s.picker))
	now := s.clock.Now()
	s.mu.Lock()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictLocked(now)
	}
	s.sessions[sess.ID] = &entry{session: sess, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()
	return sess
}

// evictLocked makes room for one session. s.mu must be held.
func (s *Store) evictLocked(now time.Time) {
	var (
		oldest   uuid.UUID
		earliest time.Time
	)
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
			continue
		}
		if earliest.IsZero() || e.expiresAt.Before(earliest) {
			oldest, earliest = id, e.expiresAt
		}
	}
	if len(s.sessions) >= s.max {
		delete(s.sessions, oldest)
	}
}

// Get returns a live session and extends its expiry.
// Expired sessions are removed and reported as missing.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if !now.Before(e.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}
	e.expiresAt = now.Add(s.ttl)
	return e.session, true
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep removes every expired session and returns how many were dropped.
func (s *Store) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}
