package memory

import (
	"context"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	undo  *undoLog
}

// NewUserRepository returns a UserRepository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.findByEmailLocked(email)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.findByEmailLocked(email)

	return ok, nil
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, &user)
	}
	sortUsers(users)

	return users, nil
}

func (r *userRepository) FindByRoleID(_ context.Context, roleID uuid.UUID) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var users []*entity.User
	for _, user := range r.store.users {
		if user.RoleID == roleID {
			users = append(users, &user)
		}
	}
	sortUsers(users)

	return users, nil
}

// Create stores user, assigning an id and timestamps. Emails are unique
// ignoring case, matching the unique index on the postgres table.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.findByEmailLocked(user.Email); exists {
		return domainerrors.ErrDuplicateCredential.WrapMessage("email already exists")
	}
	if _, ok := r.store.roles[user.RoleID]; !ok {
		return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role reference")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.store.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	id := user.ID
	r.store.users[id] = *user
	r.undo.record(func() { delete(r.store.users, id) })

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if other, exists := r.findByEmailLocked(user.Email); exists && other.ID != user.ID {
		return domainerrors.ErrDuplicateCredential.WrapMessage("email already exists")
	}
	if _, ok := r.store.roles[user.RoleID]; !ok {
		return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid role reference")
	}

	user.CreatedAt = previous.CreatedAt
	user.UpdatedAt = r.store.now()

	r.store.users[user.ID] = *user
	r.undo.record(func() { r.store.users[previous.ID] = previous })

	return nil
}

// Delete removes the user and every post they authored.
func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	delete(r.store.users, id)
	r.undo.record(func() { r.store.users[id] = previous })

	for postID, post := range r.store.posts {
		if post.AuthorID != id {
			continue
		}
		delete(r.store.posts, postID)
		r.undo.record(func() { r.store.posts[postID] = post })
	}

	return nil
}

func (r *userRepository) findByEmailLocked(email string) (entity.User, bool) {
	needle := normalizeEmail(email)
	for _, user := range r.store.users {
		if normalizeEmail(user.Email) == needle {
			return user, true
		}
	}

	return entity.User{}, false
}
