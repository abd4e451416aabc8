package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"collegeerp/internal/platform/metrics"
)

// Metrics records request counts and latencies per chi route pattern so
// parameterized paths collapse into one series.
func Metrics(m *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					pattern = p
				}
			}
			m.Record(r.Method, pattern, recorder.status, time.Since(start))
		})
	}
}
