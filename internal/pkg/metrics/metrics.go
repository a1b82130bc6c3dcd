package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillbridge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "skillbridge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	applicationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillbridge",
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Application status changes, creation included.",
		},
		[]string{"from", "to"},
	)

	wsConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "skillbridge",
			Subsystem: "ws",
			Name:      "connections",
			Help:      "Open notification websocket connections.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		applicationTransitions,
		wsConnections,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveHTTP(method, path string, status int, dur time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(dur.Seconds())
}

func SetWSConnections(n int) {
	wsConnections.Set(float64(n))
}

// Recorder feeds application lifecycle events into the registry.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) RecordApplicationTransition(from, to string) {
	if from == "" {
		from = "NONE"
	}
	applicationTransitions.WithLabelValues(from, to).Inc()
}
