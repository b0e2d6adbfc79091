// Package models defines the core domain models for the cost tracker.
//
// # Models
//
//   - User: owner of every other entity, and the recipient of limit alerts
//   - CostType: a named spending category
//   - CostRecord: one dated expense against a cost type
//   - LimitConfig: optional spending caps per calendar period for a cost type
//   - Forecast: a per cost type linear projection of daily spend
//   - Notification: a queued limit alert awaiting delivery
//
// # Conventions
//
// Amounts are decimal.Decimal and never float64. Dates that name a calendar
// day (occurred_on, window bounds, forecast points) are time.Time values at
// midnight UTC. Relationships use ID strings instead of pointers.
package models
