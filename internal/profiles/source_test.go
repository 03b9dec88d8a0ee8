package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/diewo77/smash-board/internal/config"
	"github.com/diewo77/smash-board/internal/models"
)

func TestNewSelectsSource(t *testing.T) {
	src, err := New(config.ProfilesConfig{Source: "randomuser", Count: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.(*RandomUser); !ok {
		t.Fatalf("expected *RandomUser got %T", src)
	}

	src, err = New(config.ProfilesConfig{Source: "fake", Count: 3, FakeSeed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.(*Fake); !ok {
		t.Fatalf("expected *Fake got %T", src)
	}

	if _, err := New(config.ProfilesConfig{Source: "ldap"}); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource got %v", err)
	}
}

func TestFakeLoadProfiles(t *testing.T) {
	ps, err := NewFake(5, 7).LoadProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 5 {
		t.Fatalf("expected 5 profiles got %d", len(ps))
	}
	seen := map[string]bool{}
	for _, p := range ps {
		if p.FirstName == "" || p.LastName == "" || p.Phone == "" || p.Email == "" || p.AvatarURL == "" {
			t.Fatalf("incomplete fake profile %+v", p)
		}
		if len(p.ID) != 64 {
			t.Fatalf("expected sha256 hex id got %q", p.ID)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestFakeSeedIsDeterministic(t *testing.T) {
	a, _ := NewFake(4, 99).LoadProfiles(context.Background())
	b, _ := NewFake(4, 99).LoadProfiles(context.Background())
	for i := range a {
		if a[i].FullName() != b[i].FullName() {
			t.Fatalf("profile %d differs: %q vs %q", i, a[i].FullName(), b[i].FullName())
		}
	}
}

func TestFakeHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFake(3, 1).LoadProfiles(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled got %v", err)
	}
}

func TestStaticSource(t *testing.T) {
	in := []models.Profile{{ID: "1", FirstName: "Ada"}}
	out, err := Static{Profiles: in}.LoadProfiles(context.Background())
	if err != nil || len(out) != 1 {
		t.Fatalf("unexpected result %v %v", out, err)
	}
	out[0].FirstName = "Changed"
	if in[0].FirstName != "Ada" {
		t.Fatalf("static source leaked its backing slice")
	}

	boom := errors.New("boom")
	if _, err := (Static{Err: boom}).LoadProfiles(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom got %v", err)
	}
}
