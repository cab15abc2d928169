package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityClaim is the payload sealed inside a session token. It only ever
// crosses the wire encrypted.
type IdentityClaim struct {
	UserID       uuid.UUID `json:"userID"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
}

// ResolvedIdentity is the per-request result of verifying a token and
// loading the caller's current role from storage.
type ResolvedIdentity struct {
	UserID         uuid.UUID
	Email          string
	RoleName       RoleName
	Token          string    // Refreshed token to hand back to the caller.
	TokenExpiresAt time.Time // Expiry of Token.
}

// HasRole reports whether the identity currently holds role.
func (i *ResolvedIdentity) HasRole(role RoleName) bool {
	return i != nil && i.RoleName == role
}
