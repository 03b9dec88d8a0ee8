package handlers

import (
	"errors"
	"net/http"

	"github.com/oapi-codegen/nullable"

	"github.com/diewo77/smash-board/internal/httpx"
	"github.com/diewo77/smash-board/internal/models"
	"github.com/diewo77/smash-board/internal/selection"
	"github.com/diewo77/smash-board/internal/session"
	"github.com/diewo77/smash-board/internal/validation"
)

// APIHandler exposes the board state as JSON.
type APIHandler struct{}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

type profileList struct {
	Items []models.Profile `json:"items"`
	Total int              `json:"total"`
}

type selectionResponse struct {
	Phase        selection.Phase                   `json:"phase"`
	Profile      nullable.Nullable[models.Profile] `json:"profile"`
	Message      string                            `json:"message"`
	EffectActive bool                              `json:"effect_active"`
	ContactLine  nullable.Nullable[string]         `json:"contact_line"`
}

type selectRequest struct {
	ID string `json:"id"`
}

func toSelectionResponse(s selection.State) selectionResponse {
	resp := selectionResponse{
		Phase:        s.Phase(),
		Profile:      nullable.NewNullNullable[models.Profile](),
		Message:      s.Message,
		EffectActive: s.EffectActive,
		ContactLine:  nullable.NewNullNullable[string](),
	}
	if s.Profile != nil {
		resp.Profile = nullable.NewNullableWithValue(*s.Profile)
		if s.EffectActive {
			resp.ContactLine = nullable.NewNullableWithValue(s.Profile.ContactLine())
		}
	}
	return resp
}

func apiSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httpx.JSONError(w, r, http.StatusInternalServerError, "session_unavailable", nil)
	}
	return sess, ok
}

// Profiles lists the session's profiles in service order.
func (h *APIHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	sess, ok := apiSession(w, r)
	if !ok {
		return
	}
	ps := sess.Profiles(r.Context())
	httpx.JSON(w, http.StatusOK, profileList{Items: ps, Total: len(ps)})
}

// Selection returns the current selection.
func (h *APIHandler) Selection(w http.ResponseWriter, r *http.Request) {
	sess, ok := apiSession(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, toSelectionResponse(sess.Selection.Snapshot()))
}

// Select opens a profile by id: {"id": "..."}.
func (h *APIHandler) Select(w http.ResponseWriter, r *http.Request) {
	sess, ok := apiSession(w, r)
	if !ok {
		return
	}
	var req selectRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("id", req.ID, v)
	validation.MaxLen("id", req.ID, 128, v)
	if !v.Empty() {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	state, err := sess.Select(r.Context(), req.ID)
	if errors.Is(err, session.ErrProfileNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "profile_not_found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "select_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, toSelectionResponse(state))
}

// Dismiss closes the current selection.
func (h *APIHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	sess, ok := apiSession(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, toSelectionResponse(sess.Dismiss()))
}
