package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
)

func TestGetCostStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewStatsService(f.store)

	food := f.costType(t, f.owner.ID, "Food")
	rent := f.costType(t, f.owner.ID, "Rent")
	bobFood := f.costType(t, f.other.ID, "Food")

	f.cost(t, f.owner.ID, food.ID, "2024-04-01", "10.50")
	f.cost(t, f.owner.ID, food.ID, "2024-06-30", "4.50")
	f.cost(t, f.owner.ID, rent.ID, "2024-05-01", "800")
	f.cost(t, f.owner.ID, rent.ID, "2024-07-01", "800")
	f.cost(t, f.other.ID, bobFood.ID, "2024-05-05", "999")

	t.Run("quarterly totals per cost type", func(t *testing.T) {
		stats, err := svc.GetCostStats(ctx, f.owner.ID, models.PeriodQuarterly, mustDate("2024-05-20"))
		if err != nil {
			t.Fatalf("GetCostStats failed: %v", err)
		}
		if len(stats.Totals) != 2 {
			t.Fatalf("Expected 2 totals, got %d", len(stats.Totals))
		}
		if stats.Totals[0].CostTypeName != "Food" || !stats.Totals[0].Amount.Equal(dec("15")) {
			t.Errorf("Unexpected food total: %+v", stats.Totals[0])
		}
		if stats.Totals[1].CostTypeName != "Rent" || !stats.Totals[1].Amount.Equal(dec("800")) {
			t.Errorf("Unexpected rent total: %+v", stats.Totals[1])
		}
		if !stats.Total.Equal(dec("815")) {
			t.Errorf("Expected grand total 815, got %s", stats.Total)
		}
		if stats.Period != models.PeriodQuarterly {
			t.Errorf("Expected quarterly, got %s", stats.Period)
		}
	})

	t.Run("empty window returns empty totals", func(t *testing.T) {
		stats, err := svc.GetCostStats(ctx, f.owner.ID, models.PeriodDaily, mustDate("2023-01-01"))
		if err != nil {
			t.Fatalf("GetCostStats failed: %v", err)
		}
		if stats.Totals == nil || len(stats.Totals) != 0 {
			t.Errorf("Expected empty non-nil totals, got %v", stats.Totals)
		}
		if !stats.Total.IsZero() {
			t.Errorf("Expected zero total, got %s", stats.Total)
		}
	})

	t.Run("unknown period is invalid", func(t *testing.T) {
		_, err := svc.GetCostStats(ctx, f.owner.ID, models.PeriodKind("fortnightly"), mustDate("2024-05-20"))
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("range stats", func(t *testing.T) {
		stats, err := svc.GetCostStatsForRange(ctx, f.owner.ID, period.Range{
			Start: mustDate("2024-06-30"),
			End:   mustDate("2024-07-01"),
		})
		if err != nil {
			t.Fatalf("GetCostStatsForRange failed: %v", err)
		}
		if !stats.Total.Equal(dec("804.50")) {
			t.Errorf("Expected 804.50, got %s", stats.Total)
		}
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		_, err := svc.GetCostStatsForRange(ctx, f.owner.ID, period.Range{
			Start: mustDate("2024-07-01"),
			End:   mustDate("2024-06-01"),
		})
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("SumCosts of an empty window is zero", func(t *testing.T) {
		r, err := period.Window(mustDate("2020-02-02"), models.PeriodMonthly)
		if err != nil {
			t.Fatalf("Window failed: %v", err)
		}
		total, err := svc.SumCosts(ctx, f.owner.ID, "", r)
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("Expected zero, got %s", total)
		}
	})

	t.Run("missing owner is invalid", func(t *testing.T) {
		_, err := svc.GetCostStats(ctx, "", models.PeriodDaily, mustDate("2024-05-20"))
		if !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument, got %v", err)
		}
	})
}
