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

// CreateCost persists a new cost record. The referenced cost type must belong
// to cost.OwnerID, otherwise models.ErrNotFound is returned.
func (s *SQLiteStore) CreateCost(ctx context.Context, cost *models.CostRecord) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if cost.CreatedAt == 0 {
		cost.CreatedAt = now
	}
	cost.UpdatedAt = cost.CreatedAt

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO costs (id, owner_id, cost_type_id, occurred_on, description, amount, created_at, updated_at)
		 SELECT ?, ?, ?, ?, ?, ?, ?, ?
		 WHERE EXISTS (SELECT 1 FROM cost_types WHERE id = ? AND owner_id = ?)`,
		cost.ID, cost.OwnerID, cost.CostTypeID, formatDate(cost.OccurredOn), cost.Description,
		cost.Amount.String(), cost.CreatedAt, cost.UpdatedAt,
		cost.CostTypeID, cost.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cost: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to insert cost: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cost type %s: %w", cost.CostTypeID, models.ErrNotFound)
	}

	return nil
}

// UpdateCost changes the mutable fields of an owned cost record.
func (s *SQLiteStore) UpdateCost(ctx context.Context, cost *models.CostRecord) error {
	cost.UpdatedAt = time.Now().Unix()

	result, err := s.db.ExecContext(ctx,
		`UPDATE costs SET occurred_on = ?, description = ?, amount = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		formatDate(cost.OccurredOn), cost.Description, cost.Amount.String(), cost.UpdatedAt,
		cost.ID, cost.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update cost: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cost %s: %w", cost.ID, models.ErrNotFound)
	}

	return nil
}

// GetCost retrieves a cost record owned by ownerID.
func (s *SQLiteStore) GetCost(ctx context.Context, ownerID, id string) (*models.CostRecord, error) {
	cost := &models.CostRecord{}
	var occurredOn string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, cost_type_id, occurred_on, description, amount, created_at, updated_at
		 FROM costs WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	).Scan(&cost.ID, &cost.OwnerID, &cost.CostTypeID, &occurredOn, &cost.Description,
		&cost.Amount, &cost.CreatedAt, &cost.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cost %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cost: %w", err)
	}

	if cost.OccurredOn, err = parseDate(occurredOn); err != nil {
		return nil, err
	}

	return cost, nil
}

// SumCosts totals the owner's amounts dated within [from, to]. Amounts are
// summed as decimals in Go so the result is exact.
func (s *SQLiteStore) SumCosts(ctx context.Context, ownerID, costTypeID string, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT amount FROM costs WHERE owner_id = ? AND occurred_on BETWEEN ? AND ?`
	args := []interface{}{ownerID, formatDate(from), formatDate(to)}
	if costTypeID != "" {
		query += ` AND cost_type_id = ?`
		args = append(args, costTypeID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum costs: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan cost amount: %w", err)
		}
		total = total.Add(amount)
	}

	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("error iterating costs: %w", err)
	}

	return total, nil
}

// SumCostsByType totals the owner's amounts within [from, to] per cost type.
// Cost types without records in the window are omitted.
func (s *SQLiteStore) SumCostsByType(ctx context.Context, ownerID string, from, to time.Time) ([]models.CostTypeTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.cost_type_id, t.name, c.amount
		 FROM costs c
		 JOIN cost_types t ON t.id = c.cost_type_id AND t.owner_id = c.owner_id
		 WHERE c.owner_id = ? AND c.occurred_on BETWEEN ? AND ?
		 ORDER BY t.name, c.cost_type_id`,
		ownerID, formatDate(from), formatDate(to),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum costs by type: %w", err)
	}
	defer rows.Close()

	var totals []models.CostTypeTotal
	for rows.Next() {
		var (
			typeID, name string
			amount       decimal.Decimal
		)
		if err := rows.Scan(&typeID, &name, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan cost total: %w", err)
		}
		// Rows are ordered so each cost type arrives contiguously.
		if n := len(totals); n > 0 && totals[n-1].CostTypeID == typeID {
			totals[n-1].Amount = totals[n-1].Amount.Add(amount)
			continue
		}
		totals = append(totals, models.CostTypeTotal{
			CostTypeID:   typeID,
			CostTypeName: name,
			Amount:       amount,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating costs: %w", err)
	}

	return totals, nil
}

// ListCostEntries retrieves the owner's records within [from, to] with their
// cost type names.
func (s *SQLiteStore) ListCostEntries(ctx context.Context, ownerID string, from, to time.Time) ([]models.CostEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.cost_type_id, t.name, c.occurred_on, c.amount
		 FROM costs c
		 JOIN cost_types t ON t.id = c.cost_type_id AND t.owner_id = c.owner_id
		 WHERE c.owner_id = ? AND c.occurred_on BETWEEN ? AND ?
		 ORDER BY c.occurred_on, c.created_at, c.id`,
		ownerID, formatDate(from), formatDate(to),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CostEntry
	for rows.Next() {
		var (
			entry      models.CostEntry
			occurredOn string
		)
		if err := rows.Scan(&entry.CostTypeID, &entry.CostTypeName, &occurredOn, &entry.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan cost entry: %w", err)
		}
		if entry.OccurredOn, err = parseDate(occurredOn); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost entries: %w", err)
	}

	return entries, nil
}
