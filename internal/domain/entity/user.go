// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in and author posts.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Unique login identifier.
	PasswordHash string    // Hashed credential; never the plaintext password.
	Username     string    // Public display name.
	Country      string    // Free-form country of residence.
	RoleID       uuid.UUID // Reference to the user's single Role.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Claim builds the identity claim carried (encrypted) inside a session token.
func (u *User) Claim() IdentityClaim {
	return IdentityClaim{
		UserID:       u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
