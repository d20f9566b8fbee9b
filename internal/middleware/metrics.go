package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tkadlec/conversions-backend/internal/metrics"
)

type metricsMiddleware struct {
	Stats *metrics.Metrics
}

func NewMetricsMiddleware(stats *metrics.Metrics) *metricsMiddleware {
	return &metricsMiddleware{Stats: stats}
}

// MetricsMiddleware records request counts and latency per path.
func (m *metricsMiddleware) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		m.Stats.ObserveRequest(r.URL.Path, ww.Status(), time.Since(start))
	})
}
