// Package selection tracks which profile card is currently open and the
// outcome drawn for it.
package selection

import (
	"sync"

	"github.com/diewo77/smash-board/internal/models"
	"github.com/diewo77/smash-board/internal/outcome"
)

// Phase is the two-state machine driven by Select and Dismiss.
type Phase string

const (
	Idle       Phase = "idle"
	Inspecting Phase = "inspecting"
)

// State is the current selection. The zero value is Idle.
type State struct {
	Profile      *models.Profile
	Message      string
	EffectActive bool
}

// Phase derives the machine state from the presence of a profile.
func (s State) Phase() Phase {
	if s.Profile == nil {
		return Idle
	}
	return Inspecting
}

// Holder owns one State and only mutates it through Select and Dismiss.
type Holder struct {
	mu     sync.Mutex
	picker *outcome.Picker
	state  State
}

// NewHolder returns a Holder in the Idle phase.
func NewHolder(picker *outcome.Picker) *Holder {
	if picker == nil {
		picker = outcome.NewPicker(nil)
	}
	return &Holder{picker: picker}
}

// Select replaces the state wholesale with a fresh outcome for p.
func (h *Holder) Select(p models.Profile) State {
	msg := h.picker.PickMessage(p.FullName())
	next := State{
		Profile:      &p,
		Message:      msg,
		EffectActive: outcome.IsPositive(msg),
	}
	h.mu.Lock()
	h.state = next
	h.mu.Unlock()
	return next
}

// Dismiss resets to Idle from any phase.
func (h *Holder) Dismiss() State {
	h.mu.Lock()
	h.state = State{}
	h.mu.Unlock()
	return State{}
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.state
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}
