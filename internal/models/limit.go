package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LimitConfig holds the spending ceilings one user set for one cost type.
// There is at most one LimitConfig per (OwnerID, CostTypeID); the store
// upserts on that pair.
type LimitConfig struct {
	// ID is the unique identifier for the config (UUID format).
	ID string

	OwnerID    string
	CostTypeID string

	// Each limit is optional. nil (or zero) leaves that period unconstrained.
	Daily     *decimal.Decimal
	Weekly    *decimal.Decimal
	Monthly   *decimal.Decimal
	Quarterly *decimal.Decimal
	Yearly    *decimal.Decimal

	CreatedAt int64
	UpdatedAt int64
}

// Limit returns the configured ceiling for kind and whether it is set.
// A limit is set when present and strictly positive.
func (l *LimitConfig) Limit(kind PeriodKind) (decimal.Decimal, bool) {
	if l == nil {
		return decimal.Zero, false
	}
	var v *decimal.Decimal
	switch kind {
	case PeriodDaily:
		v = l.Daily
	case PeriodWeekly:
		v = l.Weekly
	case PeriodMonthly:
		v = l.Monthly
	case PeriodQuarterly:
		v = l.Quarterly
	case PeriodYearly:
		v = l.Yearly
	}
	if v == nil || !v.IsPositive() {
		return decimal.Zero, false
	}
	return *v, true
}

// ExceededLimit is one period whose total spend for a cost type went over
// the configured limit. It is produced by limit evaluation and consumed
// immediately by the notifier; it is never persisted.
type ExceededLimit struct {
	Period PeriodKind

	// WindowStart and WindowEnd bound the calendar period that was summed.
	WindowStart time.Time
	WindowEnd   time.Time

	Total          decimal.Decimal
	Limit          decimal.Decimal
	ExceededAmount decimal.Decimal

	// Cost is the record whose write triggered the evaluation.
	Cost *CostRecord
}

// LimitAlert carries everything needed to tell an owner about one exceeded
// limit.
type LimitAlert struct {
	Owner    *User
	CostType *CostType
	Exceeded ExceededLimit
}
