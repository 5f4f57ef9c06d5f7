package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// LimitByIP allows at most requests per window from one client address.
// Rejections get the JSON error envelope and a Retry-After header.
func LimitByIP(requests int, window time.Duration) Middleware {
	retryAfter := strconv.Itoa(int(window.Seconds()) + 1)
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", retryAfter)
			writeError(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}
