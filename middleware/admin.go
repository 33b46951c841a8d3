package middleware

import "net/http"

// AdminMiddleware gates the dashboard routes on the session's admin toggle.
// The toggle is a local UI mode, not authentication: flipping it is open to
// anyone, the gate only keeps customer traffic out of admin handlers.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromRequest(r)
		if !ok || !s.IsAdmin() {
			http.Error(w, "Admin mode required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
