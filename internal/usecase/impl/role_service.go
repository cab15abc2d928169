package impl

import (
	"context"
	"log/slog"

	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type roleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	RoleRepo repository.RoleRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		roleRepo: params.RoleRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleService) ListUsersWithRole(ctx context.Context, name entity.RoleName) ([]*entity.User, error) {
	role, err := srv.roleRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	users, err := srv.userRepo.FindByRoleID(ctx, role.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	return users, nil
}

func (srv *roleService) EnsureDefaultRoles(ctx context.Context) error {
	for _, role := range entity.DefaultRoles() {
		_, err := srv.roleRepo.FindByName(ctx, role.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrRoleNotFound) {
			return errors.Wrapf(err, "failed to look up role %s", role.Name)
		}

		if err := srv.roleRepo.Create(ctx, role); err != nil {
			return errors.Wrapf(err, "failed to create role %s", role.Name)
		}

		srv.log(ctx).Info("Seeded role", slog.String("role", role.Name.String()), slog.Any("roleID", role.ID))
	}

	return nil
}
