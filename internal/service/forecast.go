package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/calculator"
	"github.com/mmynk/costtracker/internal/metrics"
	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/storage"
)

const (
	// DefaultLookbackDays is how far back history is read, counted from today.
	DefaultLookbackDays = 31

	// DefaultHorizonDays is the number of predicted days, starting today.
	DefaultHorizonDays = 31
)

// ForecastService projects each cost type's daily spend with a linear model
// fitted on recent history.
type ForecastService struct {
	store    storage.CostStore
	metrics  *metrics.Metrics
	now      func() time.Time
	lookback int
	horizon  int
}

// ForecastOption configures a ForecastService.
type ForecastOption func(*ForecastService)

// WithForecastClock sets the time source "today" is derived from.
func WithForecastClock(now func() time.Time) ForecastOption {
	return func(s *ForecastService) { s.now = now }
}

// WithForecastWindow overrides the history and prediction lengths in days.
// Non-positive values keep the defaults.
func WithForecastWindow(lookbackDays, horizonDays int) ForecastOption {
	return func(s *ForecastService) {
		if lookbackDays > 0 {
			s.lookback = lookbackDays
		}
		if horizonDays > 0 {
			s.horizon = horizonDays
		}
	}
}

// WithForecastMetrics records skipped fits on m.
func WithForecastMetrics(m *metrics.Metrics) ForecastOption {
	return func(s *ForecastService) { s.metrics = m }
}

// NewForecastService creates a new ForecastService with the given storage backend.
func NewForecastService(store storage.CostStore, opts ...ForecastOption) *ForecastService {
	s := &ForecastService{
		store:    store,
		now:      time.Now,
		lookback: DefaultLookbackDays,
		horizon:  DefaultHorizonDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// series is the history of one cost type as regression input.
type series struct {
	name string
	xs   []float64
	ys   []float64
}

// GetForecast returns a forecast per cost type with history in the lookback
// window, keyed by cost type ID. Cost types whose model cannot be fitted are
// left out.
func (s *ForecastService) GetForecast(ctx context.Context, ownerID string) (map[string]models.Forecast, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}

	today := period.Today(s.now())
	history := period.Trailing(today, s.lookback)

	entries, err := s.store.ListCostEntries(ctx, ownerID, history.Start, history.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}

	grouped := make(map[string]*series)
	for _, e := range entries {
		ser, ok := grouped[e.CostTypeID]
		if !ok {
			ser = &series{name: e.CostTypeName}
			grouped[e.CostTypeID] = ser
		}
		ser.xs = append(ser.xs, dayNumber(e.OccurredOn))
		ser.ys = append(ser.ys, e.Amount.InexactFloat64())
	}

	forecasts := make(map[string]models.Forecast, len(grouped))
	for costTypeID, ser := range grouped {
		model, err := calculator.FitLinear(ser.xs, ser.ys)
		if err != nil {
			if !errors.Is(err, models.ErrInsufficientData) {
				return nil, err
			}
			slog.Warn("Skipping forecast for cost type", "owner_id", ownerID, "cost_type_id", costTypeID, "error", err)
			s.metrics.RecordForecastFitFailure()
			continue
		}

		forecasts[costTypeID] = models.Forecast{
			CostTypeID:   costTypeID,
			CostTypeName: ser.name,
			Slope:        model.Slope,
			Intercept:    model.Intercept,
			DataPoints:   len(ser.xs),
			Points:       s.predict(costTypeID, model, today),
		}
	}

	return forecasts, nil
}

func (s *ForecastService) predict(costTypeID string, model calculator.LinearModel, today time.Time) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, s.horizon)
	for i := 0; i < s.horizon; i++ {
		d := today.AddDate(0, 0, i)
		points = append(points, models.ForecastPoint{
			CostTypeID:      costTypeID,
			Date:            d,
			PredictedAmount: decimal.NewFromFloat(model.Predict(dayNumber(d))).Round(2),
		})
	}
	return points
}

// dayNumber is the count of whole days between the Unix epoch and d.
func dayNumber(d time.Time) float64 {
	return float64(period.Date(d).Unix() / 86400)
}
