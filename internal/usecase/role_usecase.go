package usecase

import (
	"context"

	"bulletin/internal/domain/entity"
)

// RoleUsecase exposes the stored roles.
type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	ListUsersWithRole(ctx context.Context, name entity.RoleName) ([]*entity.User, error)

	// EnsureDefaultRoles creates any missing default role. Safe to call repeatedly.
	EnsureDefaultRoles(ctx context.Context) error
}
