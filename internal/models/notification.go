package models

// NotificationStatus tracks an outbox row through delivery.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is a composed limit alert waiting in, or delivered from, the
// outbox.
type Notification struct {
	// ID is the unique identifier for the notification (UUID format).
	ID string

	OwnerID string
	CostID  string
	Period  PeriodKind

	Recipient string
	Subject   string
	Body      string

	Status NotificationStatus

	// Attempts counts delivery tries; LastError keeps the latest failure.
	Attempts  int
	LastError string

	CreatedAt int64
	UpdatedAt int64
}
