package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const sessionCtxKey = ctxKey("session")

// Cookie signs and parses the session cookie: "<uuid>.<hmac>".
type Cookie struct {
	Name   string
	Secret string
	MaxAge int // seconds, 0 for a browser-session cookie

	// CrossSite sends the cookie on cross-origin API calls (SameSite=None; Secure).
	CrossSite bool
}

func (c Cookie) sign(id string) string {
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Encode returns the signed cookie value for id.
func (c Cookie) Encode(id uuid.UUID) string {
	s := id.String()
	return s + "." + c.sign(s)
}

// Decode validates the signature and returns the session id.
func (c Cookie) Decode(value string) (uuid.UUID, bool) {
	idStr, sig, ok := strings.Cut(value, ".")
	if !ok || idStr == "" || sig == "" {
		return uuid.Nil, false
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(idStr))) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Set writes the session cookie.
func (c Cookie) Set(w http.ResponseWriter, id uuid.UUID) {
	ck := &http.Cookie{
		Name:     c.Name,
		Value:    c.Encode(id),
		Path:     "/",
		MaxAge:   c.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if c.CrossSite {
		ck.SameSite = http.SameSiteNoneMode
		ck.Secure = true
	}
	http.SetCookie(w, ck)
}

// Parse reads the session id from the request cookie.
func (c Cookie) Parse(r *http.Request) (uuid.UUID, bool) {
	ck, err := r.Cookie(c.Name)
	if err != nil || ck.Value == "" {
		return uuid.Nil, false
	}
	return c.Decode(ck.Value)
}

// WithSession stores the session in context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext extracts the session.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(*Session)
	return s, ok && s != nil
}

// Middleware attaches the caller's session to the request context, mounting a
// new one when the cookie is missing, tampered with or expired.
func Middleware(store *Store, cookie Cookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *Session
			if id, ok := cookie.Parse(r); ok {
				sess, _ = store.Get(id)
			}
			if sess == nil {
				sess = store.Create()
			}
			// refresh on every request so MaxAge slides with the store TTL
			cookie.Set(w, sess.ID)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
