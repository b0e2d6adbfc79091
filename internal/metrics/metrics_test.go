package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/costtracker/internal/models"
)

func TestCounters(t *testing.T) {
	m := New("test")

	m.RecordLimitBreach(models.PeriodWeekly)
	m.RecordLimitBreach(models.PeriodWeekly)
	m.RecordLimitBreach(models.PeriodYearly)
	m.RecordNotification(StatusDelivered)
	m.RecordNotification(StatusFailed)
	m.RecordForecastFitFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.limitBreaches.WithLabelValues("weekly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.limitBreaches.WithLabelValues("yearly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues(StatusDelivered)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues(StatusFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.forecastFitFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLimitBreach(models.PeriodDaily)
		m.RecordNotification(StatusQueued)
		m.RecordForecastFitFailure()
	})
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New("costtracker")
	m.RecordLimitBreach(models.PeriodMonthly)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `costtracker_limit_breaches_total{period="monthly"} 1`))
}
