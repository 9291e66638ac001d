// Package metrics provides Prometheus metrics for the chartkit engines.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the library.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Vitals metrics
	validationFailures *prometheus.CounterVec
	classifications    *prometheus.CounterVec

	// Table metrics
	windowRecomputes prometheus.Counter
	windowRows       prometheus.Gauge
	selectionSize    prometheus.Gauge

	// Lookup metrics
	lookupDispatched prometheus.Counter
	lookupSuperseded prometheus.Counter
	lookupEmpty      prometheus.Counter
	lookupErrors     prometheus.Counter
	lookupLatency    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "chartkit",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.validationFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "vitals_validation_failures_total",
			Help:      "Total number of vitals values rejected by absolute bounds",
		},
		[]string{"field"},
	)

	m.classifications = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "vitals_classifications_total",
			Help:      "Total number of vitals classifications by field and band",
		},
		[]string{"field", "band"},
	)

	m.windowRecomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "table_window_recomputes_total",
		Help:      "Total number of virtual window recomputations",
	})

	m.windowRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "table_window_rows",
		Help:      "Number of rows materialized by the last virtual window",
	})

	m.selectionSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "table_selection_size",
		Help:      "Number of row keys currently selected",
	})

	m.lookupDispatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_dispatched_total",
		Help:      "Total number of lookup queries dispatched after debounce",
	})

	m.lookupSuperseded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_superseded_total",
		Help:      "Total number of lookup results dropped because a newer query superseded them",
	})

	m.lookupEmpty = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_empty_total",
		Help:      "Total number of lookups that yielded no matches",
	})

	m.lookupErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_errors_total",
		Help:      "Total number of lookup search function errors",
	})

	m.lookupLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lookup_latency_milliseconds",
		Help:      "Histogram of lookup search latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordValidationFailure increments the validation failure counter for a field.
func RecordValidationFailure(field string) {
	globalManager.validationFailures.WithLabelValues(field).Inc()
}

// RecordClassification increments the classification counter for a field and band.
func RecordClassification(field, band string) {
	globalManager.classifications.WithLabelValues(field, band).Inc()
}

// RecordWindowRecompute increments the window recomputation counter.
func RecordWindowRecompute() {
	globalManager.windowRecomputes.Inc()
}

// UpdateWindowRows sets the number of rows materialized by the last window.
func UpdateWindowRows(count int) {
	globalManager.windowRows.Set(float64(count))
}

// UpdateSelectionSize sets the current selection size.
func UpdateSelectionSize(count int) {
	globalManager.selectionSize.Set(float64(count))
}

// RecordLookupDispatched increments the dispatched lookup counter.
func RecordLookupDispatched() {
	globalManager.lookupDispatched.Inc()
}

// RecordLookupSuperseded increments the superseded lookup counter.
func RecordLookupSuperseded() {
	globalManager.lookupSuperseded.Inc()
}

// RecordLookupEmpty increments the empty-result lookup counter.
func RecordLookupEmpty() {
	globalManager.lookupEmpty.Inc()
}

// RecordLookupError increments the lookup error counter.
func RecordLookupError() {
	globalManager.lookupErrors.Inc()
}

// RecordLookupLatency records lookup search latency in milliseconds.
func RecordLookupLatency(latencyMs float64) {
	globalManager.lookupLatency.Observe(latencyMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
