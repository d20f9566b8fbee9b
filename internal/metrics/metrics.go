package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the report backend.
type Metrics struct {
	// HTTP surface
	Requests       *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec

	// provider proxying
	ProviderFetches *prometheus.CounterVec
	ProviderLatency prometheus.Histogram

	// day cache
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// report sessions
	ReportsLoaded   prometheus.Counter
	RecordsPerLoad  prometheus.Histogram
	ExportsRendered prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conversions_http_requests_total",
			Help: "HTTP requests by path and status.",
		}, []string{"path", "status"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "conversions_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		ProviderFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "conversions_provider_fetches_total",
			Help: "Reports API day fetches by outcome.",
		}, []string{"outcome"}),
		ProviderLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "conversions_provider_fetch_duration_seconds",
			Help:    "Reports API day fetch latency.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conversions_day_cache_hits_total",
			Help: "Day cache hits.",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conversions_day_cache_misses_total",
			Help: "Day cache misses.",
		}),
		ReportsLoaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conversions_reports_loaded_total",
			Help: "Report loads completed.",
		}),
		RecordsPerLoad: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "conversions_records_per_load",
			Help:    "Raw records per report load.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		ExportsRendered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "conversions_csv_exports_total",
			Help: "CSV exports rendered.",
		}),
	}
}

// Handler exposes the default registry for the /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(path string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.RequestLatency.WithLabelValues(path).Observe(elapsed.Seconds())
}
