package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "convertly"

// Metrics owns a private Prometheus registry and every collector the API
// exports. It implements the HTTP client's MetricsCollector and the services'
// ServiceMetrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	conversions        *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec

	refreshes       *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	rateVersion     prometheus.Gauge
	rateCurrencies  prometheus.Gauge

	upstreamRequests *prometheus.CounterVec
	upstreamErrors   *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversions performed, by domain and outcome.",
		}, []string{"domain", "outcome"}),
		conversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent in the conversion core.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}, []string{"domain"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "refreshes_total",
			Help:      "Rate table refreshes, by the source that supplied the table.",
		}, []string{"source", "outcome"}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "refresh_duration_seconds",
			Help:      "Time taken by a rate table refresh.",
			Buckets:   prometheus.DefBuckets,
		}),
		rateVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "table_version",
			Help:      "Version of the installed rate table.",
		}),
		rateCurrencies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "currencies",
			Help:      "Number of currencies in the installed rate table.",
		}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Outbound HTTP requests, by path and status.",
		}, []string{"method", "path", "status"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Outbound HTTP requests that failed or returned an error status.",
		}, []string{"method", "path"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Outbound HTTP latency including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration,
		m.conversions, m.conversionDuration,
		m.refreshes, m.refreshDuration, m.rateVersion, m.rateCurrencies,
		m.upstreamRequests, m.upstreamErrors, m.upstreamDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func (m *Metrics) RecordConversion(domain string, success bool, duration time.Duration) {
	if domain == "" {
		domain = "unknown"
	}
	m.conversions.WithLabelValues(domain, outcome(success)).Inc()
	m.conversionDuration.WithLabelValues(domain).Observe(duration.Seconds())
}

func (m *Metrics) RecordRefresh(source string, success bool, duration time.Duration) {
	m.refreshes.WithLabelValues(source, outcome(success)).Inc()
	m.refreshDuration.Observe(duration.Seconds())
}

func (m *Metrics) SetRateTable(version uint64, currencies int) {
	m.rateVersion.Set(float64(version))
	m.rateCurrencies.Set(float64(currencies))
}

func (m *Metrics) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordRequestCount(method, path string, statusCode int) {
	m.upstreamRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (m *Metrics) RecordRequestError(method, path string) {
	m.upstreamErrors.WithLabelValues(method, path).Inc()
}

// GinMiddleware records request counts and latency per matched route.
// Unmatched paths share a single label to keep cardinality bounded.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
