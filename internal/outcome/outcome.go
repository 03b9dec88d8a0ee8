// Package outcome picks the playful message shown when a profile card is clicked.
package outcome

import (
	"math/rand/v2"
	"strings"
)

// PositiveMarker identifies the positive outcome. Callers match it as a substring.
const PositiveMarker = "wants to smash!"

// Source is the randomness provider for message picks.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Picker chooses one of two candidate messages uniformly at random.
type Picker struct {
	src Source
}

// NewPicker returns a Picker drawing from src, or from the process-wide
// math/rand/v2 source when src is nil.
func NewPicker(src Source) *Picker {
	if src == nil {
		src = globalSource{}
	}
	return &Picker{src: src}
}

// Candidates returns the positive and negative messages for name, in that order.
func Candidates(name string) [2]string {
	return [2]string{
		name + " " + PositiveMarker,
		name + " doesn't want to smash",
	}
}

// PickMessage returns one of Candidates(name) with probability 0.5 each.
func (p *Picker) PickMessage(name string) string {
	c := Candidates(name)
	return c[p.src.IntN(len(c))]
}

// IsPositive reports whether msg is the positive variant.
func IsPositive(msg string) bool {
	return strings.Contains(msg, PositiveMarker)
}
