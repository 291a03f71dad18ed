// Package observability holds the Prometheus collectors of the ordering engine.
package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pizzeria"

// Tick results.
const (
	TickCompleted = "completed"
	TickAbandoned = "abandoned"
	TickFailed    = "failed"
)

var (
	registerOnce sync.Once

	ticks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "ticks_total",
			Help:      "Lifecycle ticks by result.",
		},
		[]string{"result"},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "tick_duration_seconds",
			Help:      "Lifecycle tick duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	ordersAdvanced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "orders_advanced_total",
			Help:      "Orders moved one status forward.",
		},
	)
	orderFaults = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lifecycle",
			Name:      "order_faults_total",
			Help:      "Orders a tick failed to advance.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ticks, tickDuration, ordersAdvanced, orderFaults, httpRequests, httpDuration)
	})
}

// RecordTick records one lifecycle tick.
func RecordTick(result string, advanced, failed int, duration time.Duration) {
	RegisterMetrics()
	ticks.WithLabelValues(result).Inc()
	tickDuration.Observe(duration.Seconds())
	ordersAdvanced.Add(float64(advanced))
	orderFaults.Add(float64(failed))
}

// RecordHTTPRequest records one served request. path is the route pattern, not the raw URL.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
