// Package metrics collects and exposes Prometheus metrics for the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records request-level metrics. Handlers and middleware depend on
// this narrow type rather than on prometheus directly.
type Collector struct {
	requests     *prometheus.CounterVec
	duration     prometheus.Histogram
	loginSuccess prometheus.Counter
	loginFail    prometheus.Counter
	registered   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wodtracker_http_requests_total",
			Help: "HTTP responses by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wodtracker_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wodtracker_login_success_total",
			Help: "Successful logins.",
		}),
		loginFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wodtracker_login_fail_total",
			Help: "Rejected logins.",
		}),
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wodtracker_registrations_total",
			Help: "Accounts created.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.duration,
		c.loginSuccess,
		c.loginFail,
		c.registered,
	)

	return c
}

func (c *Collector) RecordRequest(method, route, status string) {
	c.requests.WithLabelValues(method, route, status).Inc()
}

func (c *Collector) RecordDuration(d time.Duration) {
	c.duration.Observe(d.Seconds())
}

func (c *Collector) RecordLoginSuccess() { c.loginSuccess.Inc() }

func (c *Collector) RecordLoginFailure() { c.loginFail.Inc() }

func (c *Collector) RecordRegistration() { c.registered.Inc() }
