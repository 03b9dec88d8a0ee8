package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diewo77/smash-board/internal/session"
	"github.com/diewo77/smash-board/internal/view"
)

// BoardHandler serves the HTML page: the card list and the selection modal.
type BoardHandler struct{}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler() *BoardHandler {
	return &BoardHandler{}
}

// Index renders every profile of the session as a card, plus the modal when a card is open.
func (h *BoardHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	// confetti only fires on the first render after a positive click
	celebrate := sess.TakeCelebration()
	state := sess.Selection.Snapshot()
	data := map[string]any{
		"Profiles":  sess.Profiles(r.Context()),
		"Selection": state,
		"Celebrate": celebrate && state.EffectActive,
	}
	if err := view.Render(w, r, "index.html", data); err != nil {
		log.Printf("render index: %v", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

// Select opens the card {id} and redirects back to the board.
func (h *BoardHandler) Select(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	state, err := sess.Select(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, session.ErrProfileNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if state.EffectActive {
		sess.Celebrate()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dismiss closes the modal.
func (h *BoardHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	sess.Dismiss()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
