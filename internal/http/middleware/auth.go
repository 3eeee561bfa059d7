package middleware

import (
	"crypto/subtle"
	"net/http"
)

// RequireAPIKey rejects requests whose X-API-Key header does not match key.
// The comparison is constant-time.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized: Invalid or missing API key"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
