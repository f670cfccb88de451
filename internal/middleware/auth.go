// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/leadbridge/whatsapp-leads-api/internal/metrics"
)

// RequireAPIKey guards a route with the shared secret from the x-api-key
// header. An empty secret means open mode: the check disappears entirely.
// The comparison is case-sensitive; the supplied key is trimmed first.
func RequireAPIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := strings.TrimSpace(r.Header.Get("x-api-key"))
			if key != secret {
				metrics.LeadInsertFailures.WithLabelValues(metrics.ReasonUnauthorized).Inc()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{
					"ok":    false,
					"error": "unauthorized",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
