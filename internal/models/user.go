package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Only the auth layer reads it; everything
// user-facing hangs off Profile instead.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's login email (unique).
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a User with a fresh ID and creation time.
func NewUser(email, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
