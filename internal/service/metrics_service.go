package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for HTTP traffic and election events.
type MetricsService struct {
	registry             *prometheus.Registry
	handler              http.Handler
	requestDuration      *prometheus.HistogramVec
	requestTotal         *prometheus.CounterVec
	votesCast            prometheus.Counter
	candidatesRegistered prometheus.Counter
	candidateDecisions   *prometheus.CounterVec
	phaseChanges         *prometheus.CounterVec
	resets               *prometheus.CounterVec
	loginFailures        prometheus.Counter
	rateLimited          prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	votesCast := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "election_votes_cast_total",
		Help: "Total number of accepted votes",
	})

	candidatesRegistered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "election_candidates_registered_total",
		Help: "Total number of candidatures received",
	})

	candidateDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "election_candidate_decisions_total",
		Help: "Admin decisions on candidates by resulting status",
	}, []string{"status"})

	phaseChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "election_phase_changes_total",
		Help: "Phase changes by target phase",
	}, []string{"phase"})

	resets := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "election_resets_total",
		Help: "Election resets by scope",
	}, []string{"scope"})

	loginFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "admin_login_failures_total",
		Help: "Rejected admin login attempts",
	})

	rateLimited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, votesCast, candidatesRegistered, candidateDecisions, phaseChanges, resets, loginFailures, rateLimited, goroutines)

	return &MetricsService{
		registry:             registry,
		handler:              promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:      requestDuration,
		requestTotal:         requestTotal,
		votesCast:            votesCast,
		candidatesRegistered: candidatesRegistered,
		candidateDecisions:   candidateDecisions,
		phaseChanges:         phaseChanges,
		resets:               resets,
		loginFailures:        loginFailures,
		rateLimited:          rateLimited,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

func (m *MetricsService) IncVoteCast() {
	if m == nil {
		return
	}
	m.votesCast.Inc()
}

func (m *MetricsService) IncCandidateRegistered() {
	if m == nil {
		return
	}
	m.candidatesRegistered.Inc()
}

func (m *MetricsService) IncCandidateDecision(status string) {
	if m == nil {
		return
	}
	m.candidateDecisions.WithLabelValues(status).Inc()
}

func (m *MetricsService) IncPhaseChange(phase string) {
	if m == nil {
		return
	}
	m.phaseChanges.WithLabelValues(phase).Inc()
}

func (m *MetricsService) IncReset(scope string) {
	if m == nil {
		return
	}
	m.resets.WithLabelValues(scope).Inc()
}

func (m *MetricsService) IncLoginFailure() {
	if m == nil {
		return
	}
	m.loginFailures.Inc()
}

func (m *MetricsService) IncRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
