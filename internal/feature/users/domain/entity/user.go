// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the system.
type User struct {
	// ID is the unique identifier for the user. Immutable after creation.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is the source
	// of truth for duplicate detection.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and is never included
	// in any response body.
	Password string `gorm:"size:255;not null"`

	// Designation is a free-text role label, e.g. "engineer".
	Designation string `gorm:"size:255"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
