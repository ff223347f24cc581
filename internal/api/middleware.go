package api

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// LoggingMiddleware logs each dispatched request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RefreshRateLimiter throttles snapshot refreshes: each one copies the whole
// library file, so a misbehaving client must not be able to queue copies
// back to back.
type RefreshRateLimiter struct {
	limiter *rate.Limiter
}

// NewRefreshRateLimiter allows bursts of up to burst refreshes, refilling
// one permit per interval.
func NewRefreshRateLimiter(burst int, interval time.Duration) *RefreshRateLimiter {
	return &RefreshRateLimiter{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

// Middleware rejects requests over the limit with 429.
func (l *RefreshRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			slog.Warn("refresh rate limit exceeded", "remote_ip", r.RemoteAddr)
			writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "refresh rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
