package session

import "time"

// Clock provides time to the store.
// Using an interface enables deterministic expiry tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
