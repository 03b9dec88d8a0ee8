package profiles

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/diewo77/smash-board/internal/models"
)

// Fake generates profiles locally, for offline development.
type Fake struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	count int
}

// NewFake returns a generator of count profiles. A zero seed draws a random one.
func NewFake(count int, seed int64) *Fake {
	if count <= 0 {
		count = DefaultCount
	}
	return &Fake{faker: gofakeit.New(seed), count: count}
}

// LoadProfiles generates a fresh batch of count profiles.
func (f *Fake) LoadProfiles(ctx context.Context) ([]models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Profile, 0, f.count)
	for i := 0; i < f.count; i++ {
		sum := sha256.Sum256([]byte(f.faker.UUID()))
		out = append(out, models.Profile{
			ID:        hex.EncodeToString(sum[:]),
			FirstName: f.faker.FirstName(),
			LastName:  f.faker.LastName(),
			AvatarURL: f.faker.ImageURL(256, 256),
			Email:     f.faker.Email(),
			Phone:     f.faker.Phone(),
		})
	}
	return out, nil
}
