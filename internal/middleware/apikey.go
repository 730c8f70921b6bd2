package middleware

import (
	"encoding/json"
	"net/http"
)

// APIKey rejects requests that carry no x-api-key header. The value is
// not compared against a configured secret: any non-empty key passes.
// That matches the storefront's observed behavior and is flagged as a
// weak point in DESIGN.md rather than silently changed here.
func APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "API key is required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
