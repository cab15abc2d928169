package service

import (
	"context"
	"time"

	"bulletin/internal/domain/entity"
)

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// RefreshedToken is the outcome of a successful verification: a new token
// plus the user record it was validated against.
type RefreshedToken struct {
	IssuedToken
	User *entity.User
}

// TokenService issues and verifies session tokens wrapping an encrypted identity claim.
type TokenService interface {
	// Issue encrypts claim and signs it into a new token.
	Issue(claim entity.IdentityClaim) (*IssuedToken, error)

	// VerifyAndRefresh validates token against the current user record and
	// returns a new token carrying the same encrypted claim. The presented
	// token stays valid until its own expiry.
	VerifyAndRefresh(ctx context.Context, token string) (*RefreshedToken, error)

	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}
