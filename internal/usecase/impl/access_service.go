package impl

import (
	"context"
	"slices"

	"bulletin/config"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accessService struct {
	privileged entity.RoleName
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	Config *config.Config
}

// NewAccessService builds the gates around the configured privileged role.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	privileged := entity.RoleAdmin
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PrivilegedRole != "" {
		privileged = entity.RoleName(params.Config.Auth.PrivilegedRole)
	}

	return &accessService{privileged: privileged}
}

func (srv *accessService) IsPrivileged(identity *entity.ResolvedIdentity) bool {
	return identity.HasRole(srv.privileged)
}

func (srv *accessService) RequireAdmin(identity *entity.ResolvedIdentity) error {
	if identity == nil {
		return domainerrors.NewUnauthenticatedError(nil)
	}
	if !srv.IsPrivileged(identity) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *accessService) RequireAdminOrOwner(ctx context.Context, identity *entity.ResolvedIdentity, resourceID uuid.UUID, lookup usecase.OwnerLookup) error {
	if identity == nil {
		return domainerrors.NewUnauthenticatedError(nil)
	}

	ownerID, err := lookup(ctx, resourceID)
	if err != nil {
		return err
	}

	if srv.IsPrivileged(identity) || ownerID == identity.UserID {
		return nil
	}

	return domainerrors.ErrForbidden
}

func (srv *accessService) RejectRoles(identity *entity.ResolvedIdentity, roles ...entity.RoleName) error {
	if identity == nil {
		return domainerrors.NewUnauthenticatedError(nil)
	}
	if slices.Contains(roles, identity.RoleName) {
		return domainerrors.ErrForbidden
	}

	return nil
}
