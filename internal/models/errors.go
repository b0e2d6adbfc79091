package models

import "errors"

// Error kinds shared by the store, the services and the API layer. Callers
// wrap them with context and test with errors.Is.
var (
	// ErrInvalidArgument marks bad input: malformed dates, unknown periods,
	// negative amounts, references to entities the caller does not own.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a lookup of an owned entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable marks a failure to read from or write to the store.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInsufficientData marks a forecast model that cannot be fitted.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNotificationDeliveryFailed marks a failed alert send. It is logged,
	// never returned to the writer of a cost record.
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)
