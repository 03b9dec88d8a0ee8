package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diewo77/smash-board/internal/config"
	"github.com/diewo77/smash-board/internal/outcome"
	"github.com/diewo77/smash-board/internal/profiles"
	"github.com/diewo77/smash-board/internal/server"
	"github.com/diewo77/smash-board/internal/session"
)

// App wires the profile source, session store and router together.
type App struct {
	handler http.Handler
	store   *session.Store
	cfg     *config.Config
}

// NewApp builds the application from configuration.
func NewApp(cfg *config.Config) (*App, error) {
	src, err := profiles.New(cfg.Profiles)
	if err != nil {
		return nil, fmt.Errorf("profile source: %w", err)
	}
	store := session.NewStore(src, outcome.NewPicker(nil), cfg.Session.TTL, session.SystemClock{})
	store.SetLimit(cfg.Session.Max)
	cookie := session.Cookie{
		Name:      cfg.Session.CookieName,
		Secret:    cfg.Session.Secret,
		MaxAge:    int(cfg.Session.TTL.Seconds()),
		CrossSite: !cfg.CORS.Wildcard(),
	}
	return &App{
		handler: server.New(server.Options{
			Store:          store,
			Cookie:         cookie,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}),
		store: store,
		cfg:   cfg,
	}, nil
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// RunSweeper evicts expired sessions until ctx is done.
func (a *App) RunSweeper(ctx context.Context) {
	a.store.Run(ctx, a.cfg.Session.SweepInterval)
}
