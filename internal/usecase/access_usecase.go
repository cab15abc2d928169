package usecase

import (
	"context"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerLookup returns the owner of the resource identified by resourceID.
// A missing resource must be reported with an error matching
// errors.ErrNotFound, such as errors.ErrPostNotFound.
type OwnerLookup func(ctx context.Context, resourceID uuid.UUID) (uuid.UUID, error)

// AccessUsecase holds the authorization gates. Gates are pure decisions over
// an already resolved identity; they never touch the token.
type AccessUsecase interface {
	// IsPrivileged reports whether identity holds the privileged role.
	IsPrivileged(identity *entity.ResolvedIdentity) bool

	// RequireAdmin allows only the privileged role.
	RequireAdmin(identity *entity.ResolvedIdentity) error

	// RequireAdminOrOwner allows the privileged role or the owner of resourceID.
	// A missing resource is reported as not found, even for the privileged role.
	RequireAdminOrOwner(ctx context.Context, identity *entity.ResolvedIdentity, resourceID uuid.UUID, lookup OwnerLookup) error

	// RejectRoles denies identities holding any of roles.
	RejectRoles(identity *entity.ResolvedIdentity, roles ...entity.RoleName) error
}
