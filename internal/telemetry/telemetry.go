// Package telemetry holds the Prometheus metrics exported by the dashboard.
package telemetry

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/mars-explorer/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mars_explorer"

// Metrics holds the dashboard's collectors.
type Metrics struct {
	registry *prometheus.Registry

	APODFetches  *prometheus.CounterVec
	APODDuration prometheus.Histogram
	PageRenders  *prometheus.CounterVec
	HTTP         *metrics.HTTPMetrics
}

// NewMetrics registers all collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		APODFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "apod_fetches_total",
			Help:      "APOD fetches by outcome",
		}, []string{"outcome"}),
		APODDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "apod_fetch_duration_seconds",
			Help:      "Latency of APOD requests that reached the network",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Page dispatches by page and outcome",
		}, []string{"page", "outcome"}),
		HTTP: metrics.NewHTTPMetrics(reg, namespace),
	}
}

// ObserveFetch implements apod.Recorder. Fetches that never hit the
// network (missing key) are counted but not timed.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	m.APODFetches.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.APODDuration.Observe(elapsed.Seconds())
	}
}

// ObserveRender implements page.RenderObserver.
func (m *Metrics) ObserveRender(page, outcome string) {
	m.PageRenders.WithLabelValues(page, outcome).Inc()
}

// HTTPMiddleware records request metrics for the routes registered after it.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return m.HTTP.Middleware()
}

// Registry exposes the registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
