package middleware

import (
	"net/http"

	"github.com/nikhilbhutani/piccytts/internal/api/respond"
)

// GetOnly rejects every method except GET with a 400 envelope, before routing.
// OPTIONS never reaches it because CORS answers preflights first.
func GetOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.Error(w, http.StatusBadRequest, "Only GET requests are allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}
