package outcome

import (
	"math/rand/v2"
	"sync"
	"testing"
)

// fixedSource returns a scripted sequence of indexes, cycling when exhausted.
type fixedSource struct {
	mu   sync.Mutex
	seq  []int
	next int
}

func (f *fixedSource) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.seq[f.next%len(f.seq)] % n
	f.next++
	return v
}

// seededSource wraps a deterministic PCG generator.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func TestPickMessageIsOneOfCandidates(t *testing.T) {
	names := []string{"Ada Lovelace", "x", "Jean-Luc Picard", "名前 テスト", "  spaced  "}
	p := NewPicker(nil)
	for _, name := range names {
		c := Candidates(name)
		for i := 0; i < 50; i++ {
			got := p.PickMessage(name)
			if got != c[0] && got != c[1] {
				t.Fatalf("PickMessage(%q) = %q, not a candidate", name, got)
			}
		}
	}
}

func TestCandidatesFormat(t *testing.T) {
	c := Candidates("Ada Lovelace")
	if c[0] != "Ada Lovelace wants to smash!" {
		t.Errorf("positive = %q", c[0])
	}
	if c[1] != "Ada Lovelace doesn't want to smash" {
		t.Errorf("negative = %q", c[1])
	}
}

func TestPickMessageUsesSource(t *testing.T) {
	p := NewPicker(&fixedSource{seq: []int{0, 1}})
	if got := p.PickMessage("Ada Lovelace"); got != "Ada Lovelace wants to smash!" {
		t.Fatalf("first pick = %q", got)
	}
	if got := p.PickMessage("Ada Lovelace"); got != "Ada Lovelace doesn't want to smash" {
		t.Fatalf("second pick = %q", got)
	}
}

func TestPickMessageRoughlyUniform(t *testing.T) {
	const draws = 10000
	p := NewPicker(newSeededSource(42))
	positive := 0
	for i := 0; i < draws; i++ {
		if IsPositive(p.PickMessage("Ada Lovelace")) {
			positive++
		}
	}
	// 10k fair draws: sd = 50, so +/-500 is ten standard deviations.
	if positive < draws/2-500 || positive > draws/2+500 {
		t.Fatalf("positive outcomes %d/%d outside expected band", positive, draws)
	}
	if positive == 0 || positive == draws {
		t.Fatalf("only one outcome observed")
	}
}

func TestIsPositive(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Ada Lovelace wants to smash!", true},
		{"Ada Lovelace doesn't want to smash", false},
		{"wants to smash", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPositive(tt.msg); got != tt.want {
			t.Errorf("IsPositive(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
