package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds the whole request, which in turn bounds every
// outbound lookup call through the request context. The transport layer is
// what honors cancellation; the pipeline just inherits the context.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
