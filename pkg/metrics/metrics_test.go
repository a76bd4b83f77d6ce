package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionCounter(t *testing.T) {
	m := New()
	m.Transition("active")
	m.Transition("active")
	m.Transition("completed")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("completed")))
}

func TestHandlerExposesRequests(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/v1/crop-cycles", 201, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="POST",route="/api/v1/crop-cycles",status="201"} 1`)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds_bucket")
}
