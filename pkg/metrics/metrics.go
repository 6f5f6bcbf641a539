// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	WorkingHoursReplaced     *prometheus.CounterVec
	WorkingHoursRejected     *prometheus.CounterVec
	AppointmentsCreated      *prometheus.CounterVec
	AppointmentStatusChanged *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}, []string{}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}, []string{}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}, []string{}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}, []string{}),
		WorkingHoursReplaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "working_hours_replaced_total",
			Help:        "Number of successful weekly template replacements",
			ConstLabels: labels,
		}, []string{}),
		WorkingHoursRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "working_hours_rejected_total",
			Help:        "Number of weekly templates rejected by validation",
			ConstLabels: labels,
		}, []string{"kind"}),
		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Number of created appointments",
			ConstLabels: labels,
		}, []string{}),
		AppointmentStatusChanged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_status_changes_total",
			Help:        "Number of appointment status transitions",
			ConstLabels: labels,
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.WorkingHoursReplaced,
		m.WorkingHoursRejected,
		m.AppointmentsCreated,
		m.AppointmentStatusChanged,
	)

	return m
}

// IncWorkingHoursReplaced nil-safe инкремент
func (m *Metrics) IncWorkingHoursReplaced() {
	if m == nil {
		return
	}
	m.WorkingHoursReplaced.WithLabelValues().Inc()
}

// IncWorkingHoursRejected nil-safe инкремент с видом нарушения
func (m *Metrics) IncWorkingHoursRejected(kind string) {
	if m == nil {
		return
	}
	m.WorkingHoursRejected.WithLabelValues(kind).Inc()
}

// IncAppointmentsCreated nil-safe инкремент
func (m *Metrics) IncAppointmentsCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues().Inc()
}

// IncAppointmentStatusChanged nil-safe инкремент
func (m *Metrics) IncAppointmentStatusChanged(status string) {
	if m == nil {
		return
	}
	m.AppointmentStatusChanged.WithLabelValues(status).Inc()
}
