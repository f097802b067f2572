// Package api implements the OMEGA content REST API using chi.
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/omegapc/omegacms/internal/session"
)

// RequireSession returns middleware that validates a Bearer token against the
// active admin session. With no session active, every request is rejected;
// the response never reveals whether the token or the session was the problem.
func RequireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			presented := strings.TrimPrefix(auth, "Bearer ")
			current := sessions.Token()
			if current == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(current)) != 1 {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
