package server

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/diewo77/smash-board/internal/handlers"
	"github.com/diewo77/smash-board/internal/httpx"
	appmw "github.com/diewo77/smash-board/internal/middleware"
	"github.com/diewo77/smash-board/internal/session"
	"github.com/diewo77/smash-board/internal/view"
)

// Options carries what the router needs from main.
type Options struct {
	Store          *session.Store
	Cookie         session.Cookie
	AllowedOrigins []string
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Logging)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/static/*", http.StripPrefix("/static/", view.StaticHandler()))

	withSession := session.Middleware(opts.Store, opts.Cookie)

	// HTML board
	bh := handlers.NewBoardHandler()
	r.Group(func(r chi.Router) {
		r.Use(withSession)
		r.Use(appmw.Prefs)
		r.Get("/", bh.Index)
		r.Post("/profiles/{id}/select", bh.Select)
		r.Post("/selection/dismiss", bh.Dismiss)
	})

	// JSON API, CORS first so preflights never mount a session
	ah := handlers.NewAPIHandler()
	wildcard := len(opts.AllowedOrigins) == 0 || slices.Contains(opts.AllowedOrigins, "*")
	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: !wildcard,
		MaxAge:           86400,
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(c.Handler)
		r.Use(withSession)
		r.Get("/profiles", ah.Profiles)
		r.Get("/selection", ah.Selection)
		r.Post("/selection", ah.Select)
		r.Delete("/selection", ah.Dismiss)
	})

	return r
}
