package repository

import (
	"context"
	"errors"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role is not found.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines lookups over the seeded roles.
type RoleRepository interface {
	// FindByID retrieves a role by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// FindByName retrieves a role by its unique name.
	FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)

	// FindAll returns every role.
	FindAll(ctx context.Context) ([]*entity.Role, error)

	// Create persists a new role.
	Create(ctx context.Context, role *entity.Role) error
}
