// Package metrics registers the application's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec

	DonorsRegistered *prometheus.CounterVec
	DonorsDeleted    prometheus.Counter

	HospitalsRegistered prometheus.Counter

	UsersCreated  prometheus.Counter
	LoginFailures prometheus.Counter

	RateLimited *prometheus.CounterVec
}

// New creates and registers all collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hemobank_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, path and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path", "status"}),

		DonorsRegistered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hemobank_donors_registered_total",
			Help: "Total donors registered, labelled by blood group",
		}, []string{"blood_group"}),

		DonorsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hemobank_donors_deleted_total",
			Help: "Total donor records deleted",
		}),

		HospitalsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hemobank_hospitals_registered_total",
			Help: "Total hospitals registered",
		}),

		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hemobank_users_created_total",
			Help: "Total user accounts created",
		}),

		LoginFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hemobank_login_failures_total",
			Help: "Total failed login attempts",
		}),

		RateLimited: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hemobank_rate_limited_total",
			Help: "Requests rejected by the rate limiter, labelled by route",
		}, []string{"route"}),
	}
}

// ObserveRequest records one completed HTTP exchange.
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncDonorRegistered increments the registration counter for a blood group.
func (m *Metrics) IncDonorRegistered(bloodGroup string) {
	if m == nil {
		return
	}
	m.DonorsRegistered.WithLabelValues(bloodGroup).Inc()
}

// IncDonorDeleted increments the deletion counter.
func (m *Metrics) IncDonorDeleted() {
	if m == nil {
		return
	}
	m.DonorsDeleted.Inc()
}

// IncHospitalRegistered increments the hospital registration counter.
func (m *Metrics) IncHospitalRegistered() {
	if m == nil {
		return
	}
	m.HospitalsRegistered.Inc()
}

// IncUsersCreated increments the signup counter.
func (m *Metrics) IncUsersCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}

// IncLoginFailure increments the failed login counter.
func (m *Metrics) IncLoginFailure() {
	if m == nil {
		return
	}
	m.LoginFailures.Inc()
}

// IncRateLimited increments the rejected-request counter for a route.
func (m *Metrics) IncRateLimited(route string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(route).Inc()
}
