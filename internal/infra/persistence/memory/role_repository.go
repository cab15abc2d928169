package memory

import (
	"context"
	"sort"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"

	"github.com/google/uuid"
)

type roleRepository struct {
	store *Store
	undo  *undoLog
}

// NewRoleRepository returns a RoleRepository over store.
func NewRoleRepository(store *Store) repository.RoleRepository {
	return &roleRepository{store: store}
}

func (r *roleRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	role, ok := r.store.roles[id]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}

	return &role, nil
}

func (r *roleRepository) FindByName(_ context.Context, name entity.RoleName) (*entity.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, role := range r.store.roles {
		if role.Name == name {
			return &role, nil
		}
	}

	return nil, repository.ErrRoleNotFound
}

func (r *roleRepository) FindAll(_ context.Context) ([]*entity.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	roles := make([]*entity.Role, 0, len(r.store.roles))
	for _, role := range r.store.roles {
		roles = append(roles, &role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	return roles, nil
}

func (r *roleRepository) Create(_ context.Context, role *entity.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.roles {
		if existing.Name == role.Name {
			return domainerrors.ErrValidationFailed.WrapMessage("role already exists")
		}
	}

	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	id := role.ID
	r.store.roles[id] = *role
	r.undo.record(func() { delete(r.store.roles, id) })

	return nil
}
