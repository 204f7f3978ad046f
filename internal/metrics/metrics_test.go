package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"dayflow-backend/internal/metrics"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.IncCheckIn()
	m.IncCheckIn()
	m.IncLeave("pending")
	m.IncRegistration("admin")
	m.ObserveRequest("GET", "/api/health", 200, 0.01)
	m.ObserveRequest("GET", "/api/leave", 403, 0.01)

	assert.InDelta(t, 2, testutil.ToFloat64(m.CheckIns), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LeaveRequests.WithLabelValues("pending")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Registrations.WithLabelValues("admin")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/leave", "4xx")), 0)
}

func TestNilMetrics(_ *testing.T) {
	var m *metrics.Metrics

	m.IncCheckIn()
	m.IncCheckOut()
	m.IncLeave("approved")
	m.IncPayroll()
	m.IncRegistration("employee")
	m.ObserveRequest("GET", "/", 200, 0)
	m.ObserveReport("xlsx", 0)
}
