package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
)

// UpsertLimit creates or replaces the limits for (OwnerID, CostTypeID).
// The cost type must belong to the owner.
func (s *SQLiteStore) UpsertLimit(ctx context.Context, limit *models.LimitConfig) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var owned int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cost_types WHERE id = ? AND owner_id = ?`,
		limit.CostTypeID, limit.OwnerID,
	).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("failed to check cost type: %w", err)
	}
	if owned == 0 {
		return false, fmt.Errorf("cost type %s: %w", limit.CostTypeID, models.ErrNotFound)
	}

	var (
		existingID string
		createdAt  int64
	)
	err = tx.QueryRowContext(ctx,
		`SELECT id, created_at FROM cost_limits WHERE owner_id = ? AND cost_type_id = ?`,
		limit.OwnerID, limit.CostTypeID,
	).Scan(&existingID, &createdAt)

	now := time.Now().Unix()
	created := false

	switch {
	case err == sql.ErrNoRows:
		created = true
		if limit.ID == "" {
			limit.ID = uuid.New().String()
		}
		limit.CreatedAt = now
		limit.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cost_limits (id, owner_id, cost_type_id, daily_limit, weekly_limit,
			     monthly_limit, quarterly_limit, yearly_limit, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			limit.ID, limit.OwnerID, limit.CostTypeID,
			nullDecimal(limit.Daily), nullDecimal(limit.Weekly), nullDecimal(limit.Monthly),
			nullDecimal(limit.Quarterly), nullDecimal(limit.Yearly),
			limit.CreatedAt, limit.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert limit: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("failed to get limit: %w", err)
	default:
		limit.ID = existingID
		limit.CreatedAt = createdAt
		limit.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`UPDATE cost_limits SET daily_limit = ?, weekly_limit = ?, monthly_limit = ?,
			     quarterly_limit = ?, yearly_limit = ?, updated_at = ?
			 WHERE id = ?`,
			nullDecimal(limit.Daily), nullDecimal(limit.Weekly), nullDecimal(limit.Monthly),
			nullDecimal(limit.Quarterly), nullDecimal(limit.Yearly),
			limit.UpdatedAt, limit.ID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to update limit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetLimit retrieves the owner's limits for a cost type. It returns nil
// without error when none are configured.
func (s *SQLiteStore) GetLimit(ctx context.Context, ownerID, costTypeID string) (*models.LimitConfig, error) {
	limit := &models.LimitConfig{}
	var daily, weekly, monthly, quarterly, yearly decimal.NullDecimal

	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, cost_type_id, daily_limit, weekly_limit, monthly_limit,
		     quarterly_limit, yearly_limit, created_at, updated_at
		 FROM cost_limits WHERE owner_id = ? AND cost_type_id = ?`,
		ownerID, costTypeID,
	).Scan(&limit.ID, &limit.OwnerID, &limit.CostTypeID,
		&daily, &weekly, &monthly, &quarterly, &yearly,
		&limit.CreatedAt, &limit.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get limit: %w", err)
	}

	limit.Daily = decimalPtr(daily)
	limit.Weekly = decimalPtr(weekly)
	limit.Monthly = decimalPtr(monthly)
	limit.Quarterly = decimalPtr(quarterly)
	limit.Yearly = decimalPtr(yearly)

	return limit, nil
}
