// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so routers can be built repeatedly in tests.
type Metrics struct {
	Registry *prometheus.Registry

	Solves        *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
	CacheLookups  *prometheus.CounterVec
	Signups       prometheus.Counter
	Logins        *prometheus.CounterVec
	Calculations  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coinchanger_solves_total",
			Help: "Solver runs by mode and outcome",
		}, []string{"mode", "outcome"}),
		SolveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coinchanger_solve_duration_seconds",
			Help:    "Time spent in the solver, cache misses only",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"mode"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coinchanger_cache_lookups_total",
			Help: "Solve cache lookups by result",
		}, []string{"result"}),
		Signups: f.NewCounter(prometheus.CounterOpts{
			Name: "coinchanger_signups_total",
			Help: "Total number of users created",
		}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "coinchanger_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		Calculations: f.NewCounter(prometheus.CounterOpts{
			Name: "coinchanger_calculations_saved_total",
			Help: "Total number of calculations saved",
		}),
	}
}

// ObserveSolve records one solver run
func (m *Metrics) ObserveSolve(mode string, outcome string, d time.Duration) {
	m.Solves.WithLabelValues(mode, outcome).Inc()
	m.SolveDuration.WithLabelValues(mode).Observe(d.Seconds())
}

// ObserveCache records a cache hit or miss
func (m *Metrics) ObserveCache(hit bool) {
	if hit {
		m.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

// ObserveLogin records a login attempt
func (m *Metrics) ObserveLogin(success bool) {
	if success {
		m.Logins.WithLabelValues("success").Inc()
		return
	}
	m.Logins.WithLabelValues("failure").Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
