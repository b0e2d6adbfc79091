package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/costtracker/internal/metrics"
	"github.com/mmynk/costtracker/internal/models"
)

// Dispatcher sends alerts inline, one message per alert.
type Dispatcher struct {
	mailer  Mailer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher sending through mailer.
func NewDispatcher(mailer Mailer, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		mailer:  mailer,
		metrics: m,
		logger:  slog.Default().With("component", "notify.dispatcher"),
	}
}

// Notify sends every alert. Delivery failures are logged and counted; they
// never stop the remaining sends and are not returned.
func (d *Dispatcher) Notify(ctx context.Context, alerts []models.LimitAlert) error {
	d.Dispatch(ctx, alerts)
	return nil
}

// Dispatch sends every alert in order and returns how many were delivered.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []models.LimitAlert) int {
	delivered := 0
	for _, alert := range alerts {
		if err := d.send(ctx, alert); err != nil {
			d.logger.Error("Alert delivery failed", "period", alert.Exceeded.Period, "error", err)
			d.metrics.RecordNotification(metrics.StatusFailed)
			continue
		}
		d.metrics.RecordNotification(metrics.StatusDelivered)
		delivered++
	}
	return delivered
}

func (d *Dispatcher) send(ctx context.Context, alert models.LimitAlert) error {
	msg, err := Compose(alert)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrNotificationDeliveryFailed, err)
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrNotificationDeliveryFailed, msg.To, err)
	}
	return nil
}
