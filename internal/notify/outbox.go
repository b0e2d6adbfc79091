package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/costtracker/internal/metrics"
	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/storage"
)

const (
	DefaultMaxAttempts = 5
	DefaultBatchSize   = 100
)

// Outbox queues alerts in the store for the Worker to deliver.
type Outbox struct {
	store   storage.NotificationStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewOutbox creates an Outbox writing to store.
func NewOutbox(store storage.NotificationStore, m *metrics.Metrics) *Outbox {
	return &Outbox{
		store:   store,
		metrics: m,
		logger:  slog.Default().With("component", "notify.outbox"),
	}
}

// Notify renders every alert and persists the messages as pending, all in
// one transaction. Alerts that cannot be rendered are logged and dropped.
func (o *Outbox) Notify(ctx context.Context, alerts []models.LimitAlert) error {
	pending := make([]*models.Notification, 0, len(alerts))
	for _, alert := range alerts {
		msg, err := Compose(alert)
		if err != nil {
			o.logger.Error("Dropping alert", "period", alert.Exceeded.Period,
				"error", fmt.Errorf("%w: %w", models.ErrNotificationDeliveryFailed, err))
			o.metrics.RecordNotification(metrics.StatusFailed)
			continue
		}
		pending = append(pending, &models.Notification{
			OwnerID:   alert.Owner.ID,
			CostID:    alert.Exceeded.Cost.ID,
			Period:    alert.Exceeded.Period,
			Recipient: msg.To,
			Subject:   msg.Subject,
			Body:      msg.Body,
		})
	}
	if len(pending) == 0 {
		return nil
	}

	if err := o.store.EnqueueNotifications(ctx, pending); err != nil {
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	for range pending {
		o.metrics.RecordNotification(metrics.StatusQueued)
	}
	return nil
}

// FlushResult summarises one Worker.Flush.
type FlushResult struct {
	Sent    int
	Retried int
	Failed  int
}

// Worker delivers pending notifications from the outbox.
type Worker struct {
	store       storage.NotificationStore
	mailer      Mailer
	metrics     *metrics.Metrics
	maxAttempts int
	batchSize   int
	logger      *slog.Logger
}

// NewWorker creates a Worker. Non-positive maxAttempts or batchSize use the
// defaults.
func NewWorker(store storage.NotificationStore, mailer Mailer, m *metrics.Metrics, maxAttempts, batchSize int) *Worker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Worker{
		store:       store,
		mailer:      mailer,
		metrics:     m,
		maxAttempts: maxAttempts,
		batchSize:   batchSize,
		logger:      slog.Default().With("component", "notify.worker"),
	}
}

// Flush attempts one batch of pending notifications, oldest first. A
// notification is marked sent only after the mailer accepted it, so a crash
// in between delivers it again on the next flush.
func (w *Worker) Flush(ctx context.Context) (FlushResult, error) {
	var result FlushResult

	pending, err := w.store.ListPendingNotifications(ctx, w.batchSize)
	if err != nil {
		return result, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}

	for _, n := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		sendErr := w.mailer.Send(ctx, Message{To: n.Recipient, Subject: n.Subject, Body: n.Body})
		if sendErr == nil {
			if err := w.store.MarkNotificationSent(ctx, n.ID); err != nil {
				return result, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
			}
			w.metrics.RecordNotification(metrics.StatusDelivered)
			result.Sent++
			continue
		}

		final := n.Attempts+1 >= w.maxAttempts
		w.logger.Error("Notification delivery failed",
			"notification_id", n.ID,
			"recipient", n.Recipient,
			"attempt", n.Attempts+1,
			"final", final,
			"error", fmt.Errorf("%w: %w", models.ErrNotificationDeliveryFailed, sendErr),
		)
		if err := w.store.MarkNotificationFailed(ctx, n.ID, sendErr, final); err != nil {
			return result, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
		}
		if final {
			w.metrics.RecordNotification(metrics.StatusFailed)
			result.Failed++
		} else {
			result.Retried++
		}
	}

	return result, nil
}
