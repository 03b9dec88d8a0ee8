// Package profiles loads the batch of user profiles shown on the board.
package profiles

import (
	"context"
	"fmt"

	"github.com/diewo77/smash-board/internal/config"
	"github.com/diewo77/smash-board/internal/models"
)

// Source produces an ordered batch of profiles. It is called once per page session.
type Source interface {
	LoadProfiles(ctx context.Context) ([]models.Profile, error)
}

// New builds the Source selected by cfg.Source.
func New(cfg config.ProfilesConfig) (Source, error) {
	switch cfg.Source {
	case "", "randomuser":
		return NewRandomUser(cfg.URL, cfg.Count, cfg.FetchTimeout, nil), nil
	case "fake":
		return NewFake(cfg.Count, cfg.FakeSeed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// Static returns a fixed batch or a fixed error. Useful in tests and demos.
type Static struct {
	Profiles []models.Profile
	Err      error
}

// LoadProfiles returns a copy of s.Profiles, or s.Err.
func (s Static) LoadProfiles(context.Context) ([]models.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Profile, len(s.Profiles))
	copy(out, s.Profiles)
	return out, nil
}
