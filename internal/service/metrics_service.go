package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the matching API.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	cacheLookups       *prometheus.CounterVec
	dbQueryDuration    *prometheus.HistogramVec
	autoEnrollRuns     *prometheus.CounterVec
	enrollmentsCreated *prometheus.CounterVec
	emptyAvailability  prometheus.Counter
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

	cacheLookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "enrollment_result_lookups_total",
		Help: "Auto-enrollment result store lookups by outcome",
	}, []string{"result"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	autoEnrollRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auto_enrollment_runs_total",
		Help: "Auto-enrollment runs by status",
	}, []string{"status"})

	enrollmentsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auto_enrollment_inserts_total",
		Help: "Enrollment inserts attempted by auto-enrollment, by outcome",
	}, []string{"outcome"})

	emptyAvailability := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "availability_empty_total",
		Help: "Availability computations for a branch that found no eligible class",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLookups, dbQueryDuration, autoEnrollRuns, enrollmentsCreated, emptyAvailability, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		cacheLookups:       cacheLookups,
		dbQueryDuration:    dbQueryDuration,
		autoEnrollRuns:     autoEnrollRuns,
		enrollmentsCreated: enrollmentsCreated,
		emptyAvailability:  emptyAvailability,
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

// RecordCacheOperation records a result store hit or miss.
func (m *MetricsService) RecordCacheOperation(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// ObserveDBQuery records database query timing.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// RecordAutoEnrollment counts a finished run and its insert outcomes.
func (m *MetricsService) RecordAutoEnrollment(status string, created, duplicates int) {
	if m == nil {
		return
	}
	m.autoEnrollRuns.WithLabelValues(status).Inc()
	if created > 0 {
		m.enrollmentsCreated.WithLabelValues("created").Add(float64(created))
	}
	if duplicates > 0 {
		m.enrollmentsCreated.WithLabelValues("duplicate").Add(float64(duplicates))
	}
}

// RecordEmptyAvailability counts a fail-closed availability result.
func (m *MetricsService) RecordEmptyAvailability() {
	if m == nil {
		return
	}
	m.emptyAvailability.Inc()
}
