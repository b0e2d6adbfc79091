package models

import "time"

// User represents a registered account. It is the owner of every cost type,
// cost record and limit, and the recipient of limit alerts.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name used in alert greetings.
	Name string

	// Email is the contact address limit alerts are sent to (unique).
	Email string

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64
}

// NewUser returns a User with a creation timestamp. The ID is assigned by
// the store.
func NewUser(name, email string) *User {
	return &User{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().Unix(),
	}
}
