// Package monitoring provides Prometheus metrics for the recommendation API
package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec

	recommendationsServed *prometheus.CounterVec
	recommendationLatency prometheus.Histogram
	upsellOffers          prometheus.Counter
	throttledRequests     prometheus.Counter
}

// NewMetrics creates and registers the application metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	recommendationsServed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Recommendation responses served, by result status",
		},
		[]string{"status"},
	)

	recommendationLatency := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	upsellOffers := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upsell_offers_total",
			Help: "Responses that included a drink upsell",
		},
	)

	throttledRequests := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "throttled_requests_total",
			Help: "Requests rejected by the client throttle",
		},
	)

	registry.MustRegister(
		requestDuration,
		requestCount,
		recommendationsServed,
		recommendationLatency,
		upsellOffers,
		throttledRequests,
	)

	return &Metrics{
		registry:              registry,
		requestDuration:       requestDuration,
		requestCount:          requestCount,
		recommendationsServed: recommendationsServed,
		recommendationLatency: recommendationLatency,
		upsellOffers:          upsellOffers,
		throttledRequests:     throttledRequests,
	}
}

// Handler returns the /metrics scrape handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records per-request HTTP metrics
func (m *Metrics) RecordRequest(method, path string, status int, duration time.Duration) {
	statusStr := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, statusStr).Observe(duration.Seconds())
	m.requestCount.WithLabelValues(method, path, statusStr).Inc()
}

// RecordRecommendation records the outcome of one recommendation request
func (m *Metrics) RecordRecommendation(status string, hasUpsell bool, duration time.Duration) {
	m.recommendationsServed.WithLabelValues(status).Inc()
	m.recommendationLatency.Observe(duration.Seconds())
	if hasUpsell {
		m.upsellOffers.Inc()
	}
}

// RecordThrottled counts a throttled request
func (m *Metrics) RecordThrottled() {
	m.throttledRequests.Inc()
}
