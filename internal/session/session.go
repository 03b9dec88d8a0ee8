// Package session holds per-browser page state: the profile list fetched when
// the page first mounts and the current card selection.
package session

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/diewo77/smash-board/internal/models"
	"github.com/diewo77/smash-board/internal/profiles"
	"github.com/diewo77/smash-board/internal/selection"
)

// Session is one page session. Its profile list is loaded at most once.
type Session struct {
	ID        uuid.UUID
	Selection *selection.Holder

	source    profiles.Source
	once      sync.Once
	celebrate atomic.Bool

	mu       sync.RWMutex
	profiles []models.Profile
	loadErr  error
	loaded   bool
}

func newSession(id uuid.UUID, source profiles.Source, holder *selection.Holder) *Session {
	return &Session{ID: id, Selection: holder, source: source}
}

// Profiles returns the session's profiles, fetching them on first call.
// Concurrent callers wait for the single fetch. A failed fetch yields an empty list.
func (s *Session) Profiles(ctx context.Context) []models.Profile {
	s.once.Do(func() { s.load(ctx) })
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles
}

func (s *Session) load(ctx context.Context) {
	// the fetch outlives the request that triggered it
	ps, err := s.source.LoadProfiles(context.WithoutCancel(ctx))
	if err != nil {
		log.Printf("session %s: profile fetch failed: %v", s.ID, err)
		ps = nil
	}
	if ps == nil {
		ps = []models.Profile{}
	}
	s.mu.Lock()
	s.profiles = ps
	s.loadErr = err
	s.loaded = true
	s.mu.Unlock()
}

// Loaded reports whether the fetch has completed, successfully or not.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadErr returns the fetch error, if any.
func (s *Session) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Find looks a profile up by ID, loading the list if needed.
func (s *Session) Find(ctx context.Context, id string) (models.Profile, error) {
	for _, p := range s.Profiles(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Profile{}, ErrProfileNotFound
}

// Select opens the card for profile id.
func (s *Session) Select(ctx context.Context, id string) (selection.State, error) {
	p, err := s.Find(ctx, id)
	if err != nil {
		return selection.State{}, err
	}
	return s.Selection.Select(p), nil
}

// Dismiss closes the modal.
func (s *Session) Dismiss() selection.State {
	s.celebrate.Store(false)
	return s.Selection.Dismiss()
}

// Celebrate arms the effect for the next page render.
func (s *Session) Celebrate() {
	s.celebrate.Store(true)
}

// TakeCelebration reports whether the effect is armed and disarms it.
func (s *Session) TakeCelebration() bool {
	return s.celebrate.Swap(false)
}
