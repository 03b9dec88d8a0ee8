package session

import "errors"

// ErrProfileNotFound is returned when a selection names an unknown profile.
var ErrProfileNotFound = errors.New("profile not found")
