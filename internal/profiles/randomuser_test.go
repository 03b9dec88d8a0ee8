package profiles

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleBody = `{"results":[
 {"name":{"title":"Ms","first":"Ada","last":"Lovelace"},"picture":{"large":"https://img.test/ada.jpg","thumbnail":"x"},"email":"ada@example.com","login":{"uuid":"u1","sha256":"sha-ada"},"phone":"555-1234"},
 {"name":{"first":"Grace","last":"Hopper"},"picture":{"large":"https://img.test/grace.jpg"},"email":"grace@example.com","login":{"sha256":"sha-grace"},"phone":"555-9876"}
],"info":{"seed":"abc","results":2}}`

func TestRandomUserLoadProfiles(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("results")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewRandomUser(srv.URL+"/api/", 40, time.Second, srv.Client())
	ps, err := c.LoadProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "40" {
		t.Fatalf("expected results=40 got %q", gotQuery)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 profiles got %d", len(ps))
	}
	// service order preserved
	if ps[0].ID != "sha-ada" || ps[1].ID != "sha-grace" {
		t.Fatalf("unexpected order: %s, %s", ps[0].ID, ps[1].ID)
	}
	a := ps[0]
	if a.FirstName != "Ada" || a.LastName != "Lovelace" || a.AvatarURL != "https://img.test/ada.jpg" || a.Email != "ada@example.com" || a.Phone != "555-1234" {
		t.Fatalf("unexpected mapping: %+v", a)
	}
}

func TestRandomUserRequestURLDefaults(t *testing.T) {
	c := NewRandomUser("", 0, 0, nil)
	got, err := c.RequestURL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://randomuser.me/api/?results=40" {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestRandomUserEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	ps, err := NewRandomUser(srv.URL, 40, time.Second, srv.Client()).LoadProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("expected empty list got %d", len(ps))
	}
}

func TestRandomUserErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusServiceUnavailable, `{"error":"down"}`, ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, ``, ErrUnexpectedStatus},
		{"malformed json", http.StatusOK, `{"results":[`, ErrMalformedResponse},
		{"wrong shape", http.StatusOK, `{"results":"nope"}`, ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			ps, err := NewRandomUser(srv.URL, 40, time.Second, srv.Client()).LoadProfiles(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v got %v", tt.wantErr, err)
			}
			if ps != nil {
				t.Fatalf("expected no profiles on error")
			}
		})
	}
}

func TestRandomUserTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewRandomUser(srv.URL, 40, 20*time.Millisecond, srv.Client()).LoadProfiles(context.Background())
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if errors.Is(err, ErrUnexpectedStatus) || errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected transport error got %v", err)
	}
}
