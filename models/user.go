package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the public display handle of the user.
	Username string `json:"username"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It is never exposed via JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
