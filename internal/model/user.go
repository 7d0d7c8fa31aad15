package model

import "time"

// UserID uniquely identifies an identity-provider user
type UserID string

// User is a credential record in the identity store.
// Records are seeded at process start and are read-only afterwards;
// there is no registration endpoint.
type User struct {
	ID           UserID    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
