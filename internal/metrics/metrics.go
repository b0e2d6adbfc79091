// Package metrics holds the Prometheus collectors for cost tracking.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/costtracker/internal/models"
)

// Notification delivery outcomes used as the status label.
const (
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
	StatusQueued    = "queued"
)

// Metrics contains the Prometheus collectors. All methods are safe to call
// on a nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	limitBreaches       *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	forecastFitFailures prometheus.Counter
}

// New creates the collectors on a private registry under namespace.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		limitBreaches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "limit_breaches_total",
				Help:      "Total number of exceeded spending limits, by period",
			},
			[]string{"period"},
		),

		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of limit alert notifications, by outcome",
			},
			[]string{"status"},
		),

		forecastFitFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "forecast_fit_failures_total",
				Help:      "Total number of cost types skipped because no model could be fitted",
			},
		),
	}
}

// RecordLimitBreach counts one exceeded limit.
func (m *Metrics) RecordLimitBreach(period models.PeriodKind) {
	if m == nil {
		return
	}
	m.limitBreaches.WithLabelValues(string(period)).Inc()
}

// RecordNotification counts one notification outcome.
func (m *Metrics) RecordNotification(status string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(status).Inc()
}

// RecordForecastFitFailure counts one skipped cost type.
func (m *Metrics) RecordForecastFitFailure() {
	if m == nil {
		return
	}
	m.forecastFitFailures.Inc()
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
