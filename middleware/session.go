package middleware

import (
	"context"
	"net/http"

	"github.com/caffeinepub/glass-bottle-water/session"
)

type contextKey string

// SessionContextKey is the request-context key the session is stored under.
const SessionContextKey contextKey = "session"

// SessionMiddleware attaches a session to every request, creating one and
// setting the cookie on first contact.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(session.CookieName); err == nil {
				id = cookie.Value
			}

			s := store.GetOrCreate(id)
			if s.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
				})
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromRequest returns the session attached by SessionMiddleware.
func SessionFromRequest(r *http.Request) (*session.Session, bool) {
	s, ok := r.Context().Value(SessionContextKey).(*session.Session)
	return s, ok
}
