package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for occurred_on values, both
// in storage and on the wire.
const DateLayout = "2006-01-02"

// CostType is a user-defined category costs are classified under
// (e.g., "Food", "Transport").
type CostType struct {
	// ID is the unique identifier for the cost type (UUID format).
	ID string

	// OwnerID is the user this cost type belongs to.
	OwnerID string

	// Name is the display name shown in stats and alerts.
	Name string

	// Description is an optional free-form note.
	Description string

	// CreatedAt is the Unix timestamp when the cost type was created.
	CreatedAt int64
}

// CostRecord is a single spending entry.
type CostRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// OwnerID is the user who recorded the cost. Immutable after creation.
	OwnerID string

	// CostTypeID references the CostType. Immutable after creation.
	CostTypeID string

	// OccurredOn is the calendar date of the cost, at UTC midnight.
	OccurredOn time.Time

	// Description is what the money was spent on.
	Description string

	// Amount is the spent amount. Never negative.
	Amount decimal.Decimal

	// CreatedAt and UpdatedAt are Unix timestamps maintained by the store.
	CreatedAt int64
	UpdatedAt int64
}

// CostEntry is a CostRecord joined with its cost type name, as read by the
// forecasting pipeline.
type CostEntry struct {
	CostTypeID   string
	CostTypeName string
	OccurredOn   time.Time
	Amount       decimal.Decimal
}

// CostTypeTotal is one row of period statistics: the summed amount of one
// cost type within a window.
type CostTypeTotal struct {
	CostTypeID   string
	CostTypeName string
	Amount       decimal.Decimal
}
