package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/costtracker/internal/models"
)

// EnqueueNotifications persists pending notifications in a single transaction.
func (s *SQLiteStore) EnqueueNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt == 0 {
			n.CreatedAt = now
		}
		n.UpdatedAt = n.CreatedAt
		n.Status = models.NotificationPending
		n.Attempts = 0
		n.LastError = ""

		_, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (id, owner_id, cost_id, period, recipient, subject, body,
			     status, attempts, last_error, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, ?)`,
			n.ID, n.OwnerID, n.CostID, string(n.Period), n.Recipient, n.Subject, n.Body,
			string(n.Status), n.CreatedAt, n.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListPendingNotifications retrieves up to limit pending notifications,
// oldest first.
func (s *SQLiteStore) ListPendingNotifications(ctx context.Context, limit int) ([]*models.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, cost_id, period, recipient, subject, body,
		     status, attempts, last_error, created_at, updated_at
		 FROM notifications WHERE status = ? ORDER BY created_at, id LIMIT ?`,
		string(models.NotificationPending), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		var (
			period, status string
			lastError      sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.CostID, &period, &n.Recipient, &n.Subject, &n.Body,
			&status, &n.Attempts, &lastError, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Period = models.PeriodKind(period)
		n.Status = models.NotificationStatus(status)
		if lastError.Valid {
			n.LastError = lastError.String
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationSent records a successful delivery attempt.
func (s *SQLiteStore) MarkNotificationSent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET status = ?, attempts = attempts + 1, last_error = NULL, updated_at = ?
		 WHERE id = ?`,
		string(models.NotificationSent), time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return expectOneRow(result, "notification", id)
}

// MarkNotificationFailed records a failed delivery attempt. A final failure
// removes the notification from the pending queue.
func (s *SQLiteStore) MarkNotificationFailed(ctx context.Context, id string, deliveryErr error, final bool) error {
	status := models.NotificationPending
	if final {
		status = models.NotificationFailed
	}

	var lastError interface{} = nil
	if deliveryErr != nil {
		lastError = deliveryErr.Error()
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET status = ?, attempts = attempts + 1, last_error = ?, updated_at = ?
		 WHERE id = ?`,
		string(status), lastError, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return expectOneRow(result, "notification", id)
}

func expectOneRow(result sql.Result, entity, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, models.ErrNotFound)
	}
	return nil
}
