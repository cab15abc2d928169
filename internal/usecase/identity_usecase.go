package usecase

import (
	"context"

	"bulletin/internal/domain/entity"
)

// IdentityUsecase turns a raw session token into the caller's identity.
type IdentityUsecase interface {
	// Resolve verifies and refreshes rawToken and loads the caller's current
	// role. Every failure is reported as an UnauthenticatedError, except a
	// missing role record which is reported as ErrForbidden.
	Resolve(ctx context.Context, rawToken string) (*entity.ResolvedIdentity, error)
}
