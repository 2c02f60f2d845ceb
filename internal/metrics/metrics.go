// Package metrics exposes Prometheus counters for point and participation flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the registry and every collector.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  *prometheus.Registry

	pointsAwarded      *prometheus.CounterVec
	pointsDeducted     *prometheus.CounterVec
	participantsAdded  prometheus.Counter
	participantsFailed prometheus.Counter
	storeErrors        *prometheus.CounterVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "activities",
		subsystem: "api",
		enabled:   true,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.pointsAwarded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_awarded_total",
		Help:      "Sum of positive point deltas applied, by source type",
	}, []string{"source"})

	m.pointsDeducted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "points_deducted_total",
		Help:      "Sum of negative point deltas applied, by source type",
	}, []string{"source"})

	m.participantsAdded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants_added_total",
		Help:      "Participants registered through batch adds",
	})

	m.participantsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants_failed_total",
		Help:      "Batch registrations that failed for a single member",
	})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "activity_store_errors_total",
		Help:      "Activity store operations that failed, by operation",
	}, []string{"op"})
}

// RecordDelta counts an applied ledger delta under its sign.
func (m *Manager) RecordDelta(source string, delta int) {
	if !m.enabled || delta == 0 {
		return
	}
	if delta > 0 {
		m.pointsAwarded.WithLabelValues(source).Add(float64(delta))
		return
	}
	m.pointsDeducted.WithLabelValues(source).Add(float64(-delta))
}

func (m *Manager) RecordParticipants(added, failed int) {
	if !m.enabled {
		return
	}
	m.participantsAdded.Add(float64(added))
	m.participantsFailed.Add(float64(failed))
}

func (m *Manager) RecordStoreError(op string) {
	if !m.enabled {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
