// Package metrics instruments resolver operations and the daemon's HTTP
// handlers with Prometheus collectors.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pommel-dev/pathkit/internal/pathutil"
)

const namespace = "pathkit"

// Outcome labels for resolver operations.
const (
	OutcomeSuccess         = "success"
	OutcomeWorkingDirError = "working_dir_error"
	OutcomeError           = "error"
)

// Metrics holds the collectors of one daemon. Each instance owns its
// registry so several daemons (or tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal          *prometheus.CounterVec
	operationDurationSeconds *prometheus.HistogramVec
	requestsTotal            *prometheus.CounterVec
	requestDurationSeconds   *prometheus.HistogramVec
	configReloadsTotal       *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "operations_total",
				Help:      "Total number of resolver operations, by operation and outcome.",
			},
			[]string{"operation", "outcome"}),
		operationDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "resolver",
				Name:      "operation_duration_seconds",
				Help:      "Amount of time spent per resolver operation, in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"operation"}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests, by handler, method and status code.",
			},
			[]string{"name", "code", "method"}),
		requestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Amount of time spent per HTTP request, in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 10, 6),
			},
			[]string{"name", "code", "method"}),
		configReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "config",
				Name:      "reloads_total",
				Help:      "Total number of configuration reloads, by outcome.",
			},
			[]string{"outcome"}),
	}

	m.registry.MustRegister(
		m.operationsTotal,
		m.operationDurationSeconds,
		m.requestsTotal,
		m.requestDurationSeconds,
		m.configReloadsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
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

// ObserveOperation records one resolver operation that started at start
// and finished with err.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	m.operationsTotal.WithLabelValues(operation, outcome(err)).Inc()
	m.operationDurationSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveConfigReload records a configuration reload attempt.
func (m *Metrics) ObserveConfigReload(err error) {
	m.configReloadsTotal.WithLabelValues(outcome(err)).Inc()
}

// InstrumentHandler wraps an HTTP handler with request counting and timing
// under the given handler name.
func (m *Metrics) InstrumentHandler(name string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"name": name}
	return promhttp.InstrumentHandlerCounter(
		m.requestsTotal.MustCurryWith(labels),
		promhttp.InstrumentHandlerDuration(
			m.requestDurationSeconds.MustCurryWith(labels),
			next))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, pathutil.ErrWorkingDir):
		return OutcomeWorkingDirError
	default:
		return OutcomeError
	}
}
