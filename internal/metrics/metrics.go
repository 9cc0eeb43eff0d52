// Package metrics holds the Prometheus counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry *prometheus.Registry

	updates  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gemigram",
			Name:      "updates_total",
			Help:      "Telegram updates received, by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gemigram",
			Name:      "handler_failures_total",
			Help:      "Updates whose handler ended with a user-facing error reply.",
		}, []string{"handler"}),
	}
	reg.MustRegister(
		m.updates,
		m.failures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordUpdate is safe to call on a nil *Metrics.
func (m *Metrics) RecordUpdate(kind string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(kind).Inc()
}

// RecordFailure is safe to call on a nil *Metrics.
func (m *Metrics) RecordFailure(handler string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(handler).Inc()
}
