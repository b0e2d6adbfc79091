package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/storage"
)

// LimitChecker runs limit evaluation for a freshly written cost record.
type LimitChecker interface {
	EvaluateLimitsAndNotify(ctx context.Context, cost *models.CostRecord) error
}

// CostService is the write path for cost types, limits and cost records.
// Every successful cost write is followed by a limit evaluation whose
// failure is logged and never fails the write.
type CostService struct {
	store  storage.Store
	limits LimitChecker
}

// NewCostService creates a new CostService. limits may be nil to skip
// evaluation.
func NewCostService(store storage.Store, limits LimitChecker) *CostService {
	return &CostService{store: store, limits: limits}
}

// CreateCostType adds a cost type for ownerID.
func (s *CostService) CreateCostType(ctx context.Context, ownerID, name, description string) (*models.CostType, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: cost type name is required", models.ErrInvalidArgument)
	}

	costType := &models.CostType{OwnerID: ownerID, Name: name, Description: description}
	if err := s.store.CreateCostType(ctx, costType); err != nil {
		slog.Error("CreateCostType failed", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return costType, nil
}

// ListCostTypes returns the owner's cost types.
func (s *CostService) ListCostTypes(ctx context.Context, ownerID string) ([]*models.CostType, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}
	costTypes, err := s.store.ListCostTypes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return costTypes, nil
}

// SetLimit creates or replaces the limits of one cost type and reports
// whether they were created.
func (s *CostService) SetLimit(ctx context.Context, limit *models.LimitConfig) (bool, error) {
	if limit == nil || limit.OwnerID == "" {
		return false, fmt.Errorf("%w: owner is required", models.ErrInvalidArgument)
	}
	for _, v := range []*decimal.Decimal{limit.Daily, limit.Weekly, limit.Monthly, limit.Quarterly, limit.Yearly} {
		if v != nil && v.IsNegative() {
			return false, fmt.Errorf("%w: limits must not be negative", models.ErrInvalidArgument)
		}
	}
	if err := s.requireCostType(ctx, limit.OwnerID, limit.CostTypeID); err != nil {
		return false, err
	}

	created, err := s.store.UpsertLimit(ctx, limit)
	if err != nil {
		slog.Error("SetLimit failed", "owner_id", limit.OwnerID, "cost_type_id", limit.CostTypeID, "error", err)
		return false, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return created, nil
}

// GetLimit returns the limits of one cost type, or nil when none are set.
func (s *CostService) GetLimit(ctx context.Context, ownerID, costTypeID string) (*models.LimitConfig, error) {
	if err := s.requireCostType(ctx, ownerID, costTypeID); err != nil {
		return nil, err
	}
	limit, err := s.store.GetLimit(ctx, ownerID, costTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return limit, nil
}

// RecordCost persists a new cost record and evaluates its cost type's limits.
func (s *CostService) RecordCost(ctx context.Context, cost *models.CostRecord) error {
	if err := validateCost(cost); err != nil {
		return err
	}
	if err := s.requireCostType(ctx, cost.OwnerID, cost.CostTypeID); err != nil {
		return err
	}

	if err := s.store.CreateCost(ctx, cost); err != nil {
		slog.Error("RecordCost failed", "owner_id", cost.OwnerID, "error", err)
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}

	s.evaluate(ctx, cost)
	return nil
}

// UpdateCost changes the date, description and amount of an owned record
// and re-evaluates its cost type's limits. The record's owner and cost type
// cannot change.
func (s *CostService) UpdateCost(ctx context.Context, cost *models.CostRecord) error {
	if cost == nil || cost.ID == "" {
		return fmt.Errorf("%w: cost id is required", models.ErrInvalidArgument)
	}

	existing, err := s.store.GetCost(ctx, cost.OwnerID, cost.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	if cost.CostTypeID != "" && cost.CostTypeID != existing.CostTypeID {
		return fmt.Errorf("%w: cost type of a record cannot change", models.ErrInvalidArgument)
	}

	existing.OccurredOn = cost.OccurredOn
	existing.Description = cost.Description
	existing.Amount = cost.Amount
	if err := validateCost(existing); err != nil {
		return err
	}

	if err := s.store.UpdateCost(ctx, existing); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		slog.Error("UpdateCost failed", "owner_id", cost.OwnerID, "cost_id", cost.ID, "error", err)
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	*cost = *existing

	s.evaluate(ctx, cost)
	return nil
}

func (s *CostService) evaluate(ctx context.Context, cost *models.CostRecord) {
	if s.limits == nil {
		return
	}
	if err := s.limits.EvaluateLimitsAndNotify(ctx, cost); err != nil {
		slog.Error("Limit evaluation failed", "owner_id", cost.OwnerID, "cost_id", cost.ID, "error", err)
	}
}

// requireCostType checks that costTypeID exists and belongs to ownerID.
func (s *CostService) requireCostType(ctx context.Context, ownerID, costTypeID string) error {
	if ownerID == "" || costTypeID == "" {
		return fmt.Errorf("%w: owner and cost type are required", models.ErrInvalidArgument)
	}
	_, err := s.store.GetCostType(ctx, ownerID, costTypeID)
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: unknown cost type %s", models.ErrInvalidArgument, costTypeID)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrDataUnavailable, err)
	}
	return nil
}

// validateCost checks a record before it is written and truncates its date
// to the calendar day.
func validateCost(cost *models.CostRecord) error {
	if cost == nil {
		return fmt.Errorf("%w: cost record is required", models.ErrInvalidArgument)
	}
	if cost.OccurredOn.IsZero() {
		return fmt.Errorf("%w: cost date is required", models.ErrInvalidArgument)
	}
	if cost.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", models.ErrInvalidArgument)
	}
	cost.OccurredOn = period.Date(cost.OccurredOn)
	return nil
}
