package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters/histograms for the clinic API.
type Metrics struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	appointments    *prometheus.CounterVec
	wizardSteps     *prometheus.CounterVec
	provisionFailed prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "accounts",
			Name:      "logins_total",
			Help:      "Authentication attempts by outcome",
		}, []string{"outcome"}),
		appointments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "appointments_submitted_total",
			Help:      "Bookings persisted by channel",
		}, []string{"type"}),
		wizardSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Booking wizard transitions by resulting step",
		}, []string{"step"}),
		provisionFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "doctors",
			Name:      "partial_provision_total",
			Help:      "Doctor profiles stored without a login",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requests, m.latency, m.logins, m.appointments, m.wizardSteps, m.provisionFailed)
	return m
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAppointment(channel string) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(channel).Inc()
}

func (m *Metrics) ObserveWizardStep(step string) {
	if m == nil {
		return
	}
	m.wizardSteps.WithLabelValues(step).Inc()
}

func (m *Metrics) ObservePartialProvision() {
	if m == nil {
		return
	}
	m.provisionFailed.Inc()
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
