package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceRecordsAutoEnrollment(t *testing.T) {
	m := NewMetricsService()
	m.RecordAutoEnrollment("completed", 2, 1)
	m.RecordAutoEnrollment("review_required", 0, 0)

	body := scrape(t, m)
	assert.Contains(t, body, `auto_enrollment_runs_total{status="completed"} 1`)
	assert.Contains(t, body, `auto_enrollment_runs_total{status="review_required"} 1`)
	assert.Contains(t, body, `auto_enrollment_inserts_total{outcome="created"} 2`)
	assert.Contains(t, body, `auto_enrollment_inserts_total{outcome="duplicate"} 1`)
}

func scrape(t *testing.T, m *MetricsService) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/branches/options", http.StatusOK, 10*time.Millisecond)
	m.RecordCacheOperation(true)

	body := scrape(t, m)
	assert.True(t, strings.Contains(body, "http_requests_total"))
	assert.True(t, strings.Contains(body, "enrollment_result_lookups_total"))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.RecordAutoEnrollment("completed", 1, 0)
		m.RecordEmptyAvailability()
		m.ObserveDBQuery("q", time.Millisecond)
		m.RecordCacheOperation(false)
	})
}
