package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/storage"
)

// CostStats is the per-cost-type breakdown of one window.
type CostStats struct {
	Period models.PeriodKind
	Range  period.Range
	Totals []models.CostTypeTotal
	Total  decimal.Decimal
}

// StatsService aggregates an owner's costs over calendar windows.
type StatsService struct {
	store storage.CostStore
}

// NewStatsService creates a new StatsService with the given storage backend.
func NewStatsService(store storage.CostStore) *StatsService {
	return &StatsService{store: store}
}

// SumCosts returns the owner's total within r. An empty costTypeID sums all
// cost types. A window without records sums to zero.
func (s *StatsService) SumCosts(ctx context.Context, ownerID, costTypeID string, r period.Range) (decimal.Decimal, error) {
	if ownerID == "" {
		return decimal.Zero, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}
	total, err := s.store.SumCosts(ctx, ownerID, costTypeID, r.Start, r.End)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return total, nil
}

// GetCostStats returns one total per cost type for the calendar period of
// kind that contains ref.
func (s *StatsService) GetCostStats(ctx context.Context, ownerID string, kind models.PeriodKind, ref time.Time) (*CostStats, error) {
	r, err := period.Window(ref, kind)
	if err != nil {
		return nil, err
	}
	stats, err := s.GetCostStatsForRange(ctx, ownerID, r)
	if err != nil {
		return nil, err
	}
	stats.Period = kind
	return stats, nil
}

// GetCostStatsForRange returns one total per cost type for an arbitrary
// inclusive range.
func (s *StatsService) GetCostStatsForRange(ctx context.Context, ownerID string, r period.Range) (*CostStats, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}
	if r.Start.IsZero() || r.End.IsZero() || r.End.Before(r.Start) {
		return nil, fmt.Errorf("%w: invalid range %s", models.ErrInvalidArgument, r)
	}

	totals, err := s.store.SumCostsByType(ctx, ownerID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	if totals == nil {
		totals = []models.CostTypeTotal{}
	}

	stats := &CostStats{Range: r, Totals: totals, Total: decimal.Zero}
	for _, t := range totals {
		stats.Total = stats.Total.Add(t.Amount)
	}
	return stats, nil
}
