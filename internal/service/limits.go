package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/costtracker/internal/calculator"
	"github.com/mmynk/costtracker/internal/metrics"
	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/storage"
)

// Notifier delivers limit alerts. Implementations decide whether delivery
// happens inline or through the outbox; per-alert delivery failures are
// theirs to handle. A returned error means the alerts were not accepted.
type Notifier interface {
	Notify(ctx context.Context, alerts []models.LimitAlert) error
}

// LimitEvaluator checks a cost type's running totals against its limits
// after a cost record is written.
type LimitEvaluator struct {
	store    storage.Store
	stats    *StatsService
	notifier Notifier
	metrics  *metrics.Metrics
	now      func() time.Time
}

// LimitOption configures a LimitEvaluator.
type LimitOption func(*LimitEvaluator)

// WithClock sets the time source period windows are anchored at.
func WithClock(now func() time.Time) LimitOption {
	return func(e *LimitEvaluator) { e.now = now }
}

// WithLimitMetrics records breaches on m.
func WithLimitMetrics(m *metrics.Metrics) LimitOption {
	return func(e *LimitEvaluator) { e.metrics = m }
}

// NewLimitEvaluator creates a LimitEvaluator that sums period totals through
// stats and hands breaches to notifier. A nil stats aggregates over store.
func NewLimitEvaluator(store storage.Store, stats *StatsService, notifier Notifier, opts ...LimitOption) *LimitEvaluator {
	if stats == nil {
		stats = NewStatsService(store)
	}
	e := &LimitEvaluator{store: store, stats: stats, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateLimits returns every period whose total for the record's cost type
// is strictly above its limit. Windows are the calendar periods containing
// the current time. A cost type without limits yields nothing.
func (e *LimitEvaluator) EvaluateLimits(ctx context.Context, cost *models.CostRecord) ([]models.ExceededLimit, error) {
	if cost == nil || cost.OwnerID == "" || cost.CostTypeID == "" {
		return nil, fmt.Errorf("%w: cost record with owner and cost type is required", models.ErrInvalidArgument)
	}

	cfg, err := e.store.GetLimit(ctx, cost.OwnerID, cost.CostTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	if cfg == nil {
		return nil, nil
	}

	now := e.now()
	var totals []calculator.PeriodTotal
	for _, kind := range models.PeriodKinds {
		if _, ok := cfg.Limit(kind); !ok {
			continue
		}
		r, err := period.Window(now, kind)
		if err != nil {
			return nil, err
		}
		total, err := e.stats.SumCosts(ctx, cost.OwnerID, cost.CostTypeID, r)
		if err != nil {
			return nil, err
		}
		totals = append(totals, calculator.PeriodTotal{Period: kind, Start: r.Start, End: r.End, Total: total})
	}

	exceeded := calculator.ExceededLimits(cfg, totals, cost)
	for _, ex := range exceeded {
		e.metrics.RecordLimitBreach(ex.Period)
	}
	return exceeded, nil
}

// EvaluateLimitsAndNotify evaluates the record's limits and sends one alert
// per exceeded period to the record's owner. If the owner or the cost type
// cannot be resolved no alerts are sent.
func (e *LimitEvaluator) EvaluateLimitsAndNotify(ctx context.Context, cost *models.CostRecord) error {
	if cost == nil {
		return fmt.Errorf("%w: cost record is required", models.ErrInvalidArgument)
	}

	owner, err := e.store.GetUser(ctx, cost.OwnerID)
	if errors.Is(err, models.ErrNotFound) {
		slog.Warn("Skipping limit evaluation: owner not found", "owner_id", cost.OwnerID, "cost_id", cost.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}

	exceeded, err := e.EvaluateLimits(ctx, cost)
	if err != nil {
		return err
	}
	if len(exceeded) == 0 {
		return nil
	}

	costType, err := e.store.GetCostType(ctx, cost.OwnerID, cost.CostTypeID)
	if errors.Is(err, models.ErrNotFound) {
		slog.Warn("Skipping limit alerts: cost type not found", "owner_id", cost.OwnerID, "cost_type_id", cost.CostTypeID, "cost_id", cost.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}

	alerts := make([]models.LimitAlert, 0, len(exceeded))
	for _, ex := range exceeded {
		slog.Info("Cost limit exceeded",
			"owner_id", owner.ID,
			"cost_type", costType.Name,
			"period", ex.Period,
			"total", ex.Total.String(),
			"limit", ex.Limit.String(),
		)
		alerts = append(alerts, models.LimitAlert{Owner: owner, CostType: costType, Exceeded: ex})
	}

	if e.notifier == nil {
		return nil
	}
	return e.notifier.Notify(ctx, alerts)
}
