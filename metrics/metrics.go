package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ReportsGeneratedTotal counts generated impact reports by variant.
	ReportsGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waste",
		Subsystem: "impact",
		Name:      "reports_generated_total",
		Help:      "Total number of impact reports generated, labeled by variant (admin, public).",
	}, []string{"variant"})

	// GenerationDurationSeconds is the end-to-end time of one analysis run.
	GenerationDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "waste",
		Subsystem: "impact",
		Name:      "generation_duration_seconds",
		Help:      "Time to generate an impact report (fetch + analysis + assembly).",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"variant"})

	// CacheRequestsTotal counts public snapshot cache lookups by outcome.
	CacheRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waste",
		Subsystem: "impact",
		Name:      "cache_requests_total",
		Help:      "Total number of public snapshot cache lookups, labeled by result (hit, miss, error).",
	}, []string{"result"})

	// RabbitMQConnected is 1 when the subscriber considers itself connected.
	RabbitMQConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "waste",
		Subsystem: "impact",
		Name:      "rabbitmq_connected",
		Help:      "Whether the report-event RabbitMQ subscriber is currently connected (best-effort).",
	})

	// EventsProcessedTotal counts report-event deliveries by outcome.
	EventsProcessedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waste",
		Subsystem: "impact",
		Name:      "rabbitmq_events_processed_total",
		Help:      "Total number of report-event deliveries processed, labeled by result.",
	}, []string{"result"})
)

// Register registers service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ReportsGeneratedTotal,
			GenerationDurationSeconds,
			CacheRequestsTotal,
			RabbitMQConnected,
			EventsProcessedTotal,
		)
	})
}
