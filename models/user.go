package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID string).
	// It is generated once at signup and never reused.
	UserID string `json:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Matching is case-sensitive.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
