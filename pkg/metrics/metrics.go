package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCountTotal   prometheus.Gauge

	EstimatesComputed  *prometheus.CounterVec
	RequestsSubmitted  *prometheus.CounterVec
	AvailabilityChecks *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
// Если reg == nil, метрики не регистрируются (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCountTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
		EstimatesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "estimates_computed_total",
			Help:        "Number of estimates computed by plan type",
			ConstLabels: constLabels,
		}, []string{"plan"}),
		RequestsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_requests_submitted_total",
			Help:        "Number of booking requests submitted by plan type",
			ConstLabels: constLabels,
		}, []string{"plan"}),
		AvailabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Number of classified dates by resulting status",
			ConstLabels: constLabels,
		}, []string{"status"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequestsTotal,
			m.HTTPRequestDuration,
			m.DBQueryDuration,
			m.DBOpenConnections,
			m.DBInUseConnections,
			m.DBIdleConnections,
			m.DBWaitCountTotal,
			m.EstimatesComputed,
			m.RequestsSubmitted,
			m.AvailabilityChecks,
		)
	}

	return m
}

// IncEstimate увеличивает счетчик рассчитанных смет (nil-safe)
func (m *Metrics) IncEstimate(plan string) {
	if m == nil {
		return
	}
	m.EstimatesComputed.WithLabelValues(plan).Inc()
}

// IncRequestSubmitted увеличивает счетчик отправленных заявок (nil-safe)
func (m *Metrics) IncRequestSubmitted(plan string) {
	if m == nil {
		return
	}
	m.RequestsSubmitted.WithLabelValues(plan).Inc()
}

// IncAvailability увеличивает счетчик проверок доступности дат (nil-safe)
func (m *Metrics) IncAvailability(status string) {
	if m == nil {
		return
	}
	m.AvailabilityChecks.WithLabelValues(status).Inc()
}
