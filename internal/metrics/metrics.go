package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for each fact-check request.
const (
	OutcomeFound         = "found"
	OutcomeNotFound      = "not_found"
	OutcomeInvalid       = "invalid"
	OutcomeUpstreamError = "upstream_error"
)

// Metrics owns a private registry so each server (and each test) gets its
// own collectors.
type Metrics struct {
	registry         *prometheus.Registry
	checks           *prometheus.CounterVec
	reviews          prometheus.Counter
	upstreamDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "factcheck",
			Name:      "requests_total",
			Help:      "Fact-check requests by outcome.",
		}, []string{"outcome"}),
		reviews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factcheck",
			Name:      "reviews_returned_total",
			Help:      "Claim reviews returned to clients.",
		}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "factcheck",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of claims:search calls by HTTP status (0 on transport failure).",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	reg.MustRegister(m.checks, m.reviews, m.upstreamDuration)

	return m
}

// ObserveCheck records the outcome of a single fact-check request.
func (m *Metrics) ObserveCheck(outcome string, reviews int) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(outcome).Inc()
	m.reviews.Add(float64(reviews))
}

// ObserveUpstream records one call to the search API.
func (m *Metrics) ObserveUpstream(status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
