package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/costtracker/internal/models"
)

// CreateCostType persists a new cost type to the database.
func (s *SQLiteStore) CreateCostType(ctx context.Context, costType *models.CostType) error {
	if costType.ID == "" {
		costType.ID = uuid.New().String()
	}
	if costType.CreatedAt == 0 {
		costType.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cost_types (id, owner_id, name, description, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		costType.ID, costType.OwnerID, costType.Name, costType.Description, costType.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cost type: %w", err)
	}

	return nil
}

// GetCostType retrieves a cost type owned by ownerID.
func (s *SQLiteStore) GetCostType(ctx context.Context, ownerID, id string) (*models.CostType, error) {
	costType := &models.CostType{}

	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, description, created_at
		 FROM cost_types WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	).Scan(&costType.ID, &costType.OwnerID, &costType.Name, &costType.Description, &costType.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cost type %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cost type: %w", err)
	}

	return costType, nil
}

// ListCostTypes retrieves all cost types owned by ownerID.
func (s *SQLiteStore) ListCostTypes(ctx context.Context, ownerID string) ([]*models.CostType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, description, created_at
		 FROM cost_types WHERE owner_id = ? ORDER BY name, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost types: %w", err)
	}
	defer rows.Close()

	var costTypes []*models.CostType
	for rows.Next() {
		costType := &models.CostType{}
		if err := rows.Scan(&costType.ID, &costType.OwnerID, &costType.Name,
			&costType.Description, &costType.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cost type: %w", err)
		}
		costTypes = append(costTypes, costType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost types: %w", err)
	}

	return costTypes, nil
}
