package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec   // method, route, status
	HTTPDuration    *prometheus.HistogramVec // method, route
	Registrations   *prometheus.CounterVec   // role
	CheckIns        prometheus.Counter
	CheckOuts       prometheus.Counter
	LeaveRequests   *prometheus.CounterVec // status: pending on create, then admin decisions
	PayrollCreated  prometheus.Counter
	ReportGenerated *prometheus.HistogramVec // format
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dayflow_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dayflow_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Registrations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dayflow_registrations_total",
			Help: "Total number of registered users.",
		}, []string{"role"}),
		CheckIns: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dayflow_attendance_checkins_total",
			Help: "Total number of successful check-ins.",
		}),
		CheckOuts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dayflow_attendance_checkouts_total",
			Help: "Total number of successful check-outs.",
		}),
		LeaveRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dayflow_leave_requests_total",
			Help: "Leave requests by resulting status.",
		}, []string{"status"}),
		PayrollCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "dayflow_payroll_records_total",
			Help: "Total number of payroll records created.",
		}),
		ReportGenerated: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name: "dayflow_report_generation_duration_seconds",
			Help: "Duration of report generation.",
		}, []string{"format"}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) IncRegistration(role string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(role).Inc()
}

func (m *Metrics) IncCheckIn() {
	if m == nil {
		return
	}
	m.CheckIns.Inc()
}

func (m *Metrics) IncCheckOut() {
	if m == nil {
		return
	}
	m.CheckOuts.Inc()
}

func (m *Metrics) IncLeave(status string) {
	if m == nil {
		return
	}
	m.LeaveRequests.WithLabelValues(status).Inc()
}

func (m *Metrics) IncPayroll() {
	if m == nil {
		return
	}
	m.PayrollCreated.Inc()
}

func (m *Metrics) ObserveReport(format string, seconds float64) {
	if m == nil {
		return
	}
	m.ReportGenerated.WithLabelValues(format).Observe(seconds)
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
