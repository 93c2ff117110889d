package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request with a deadline. Store calls made under the
// request context fail once it passes, including waits for a pooled
// connection.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
