// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
)

// Store defines the interface for cost tracking storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Every method that reads or writes an owned entity takes the owner's ID and
// filters on it. A record owned by someone else behaves exactly like a
// missing record.
type Store interface {
	UserStore
	CostStore
	NotificationStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore is the user directory.
type UserStore interface {
	// CreateUser persists a new user. The user.ID field is populated if empty.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser returns the user with the given ID, or models.ErrNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// CostStore holds cost types, cost records and limits.
type CostStore interface {
	// CreateCostType persists a new cost type for costType.OwnerID.
	CreateCostType(ctx context.Context, costType *models.CostType) error

	// GetCostType returns an owned cost type, or models.ErrNotFound.
	GetCostType(ctx context.Context, ownerID, id string) (*models.CostType, error)

	// ListCostTypes returns the owner's cost types ordered by name.
	ListCostTypes(ctx context.Context, ownerID string) ([]*models.CostType, error)

	// CreateCost persists a new cost record for cost.OwnerID.
	CreateCost(ctx context.Context, cost *models.CostRecord) error

	// UpdateCost changes the date, description and amount of an owned record.
	// Owner and cost type are immutable. Returns models.ErrNotFound if the
	// record does not exist for cost.OwnerID.
	UpdateCost(ctx context.Context, cost *models.CostRecord) error

	// GetCost returns an owned cost record, or models.ErrNotFound.
	GetCost(ctx context.Context, ownerID, id string) (*models.CostRecord, error)

	// UpsertLimit creates or replaces the LimitConfig for
	// (limit.OwnerID, limit.CostTypeID). It reports whether a new row was
	// created.
	UpsertLimit(ctx context.Context, limit *models.LimitConfig) (bool, error)

	// GetLimit returns the owner's LimitConfig for a cost type, or nil with
	// no error when none is configured.
	GetLimit(ctx context.Context, ownerID, costTypeID string) (*models.LimitConfig, error)

	// SumCosts sums the owner's cost amounts with occurred_on in [from, to],
	// both inclusive. An empty costTypeID sums across all cost types.
	SumCosts(ctx context.Context, ownerID, costTypeID string, from, to time.Time) (decimal.Decimal, error)

	// SumCostsByType returns one total per cost type with records in
	// [from, to], ordered by cost type name.
	SumCostsByType(ctx context.Context, ownerID string, from, to time.Time) ([]models.CostTypeTotal, error)

	// ListCostEntries returns the owner's records in [from, to] joined with
	// their cost type name, ordered by date.
	ListCostEntries(ctx context.Context, ownerID string, from, to time.Time) ([]models.CostEntry, error)
}

// NotificationStore is the alert outbox.
type NotificationStore interface {
	// EnqueueNotifications persists pending notifications in one transaction.
	EnqueueNotifications(ctx context.Context, notifications []*models.Notification) error

	// ListPendingNotifications returns up to limit pending notifications,
	// oldest first, across all owners. It is used by the delivery worker
	// only.
	ListPendingNotifications(ctx context.Context, limit int) ([]*models.Notification, error)

	// MarkNotificationSent records a successful delivery.
	MarkNotificationSent(ctx context.Context, id string) error

	// MarkNotificationFailed records a failed attempt. When final is true
	// the notification leaves the pending queue.
	MarkNotificationFailed(ctx context.Context, id string, deliveryErr error, final bool) error
}
