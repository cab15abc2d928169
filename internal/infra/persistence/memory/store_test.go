package memory

import (
	"context"
	"testing"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRole(t *testing.T, store *Store, name entity.RoleName) *entity.Role {
	t.Helper()

	role := &entity.Role{Name: name}
	require.NoError(t, NewRoleRepository(store).Create(context.Background(), role))

	return role
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	users := NewUserRepository(store)

	user := &entity.User{Email: "A@Example.com", PasswordHash: "hash", RoleID: role.ID}
	require.NoError(t, users.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := users.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	exists, err := users.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// Mutating the returned copy must not touch the store.
	found.Email = "changed@example.com"
	again, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A@Example.com", again.Email)

	byRole, err := users.FindByRoleID(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, byRole, 1)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	users := NewUserRepository(store)

	require.NoError(t, users.Create(ctx, &entity.User{Email: "a@example.com", RoleID: role.ID}))

	err := users.Create(ctx, &entity.User{Email: "A@EXAMPLE.COM", RoleID: role.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCredential))
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore())

	_, err := users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = users.Update(ctx, &entity.User{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = users.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteRemovesPosts(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	users := NewUserRepository(store)
	posts := NewPostRepository(store)

	author := &entity.User{Email: "a@example.com", RoleID: role.ID}
	require.NoError(t, users.Create(ctx, author))
	post := &entity.Post{Title: "t", Description: "d", AuthorID: author.ID}
	require.NoError(t, posts.Create(ctx, post))

	require.NoError(t, users.Delete(ctx, author.ID))

	_, err := posts.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_UpdateKeepsAuthor(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	author := &entity.User{Email: "a@example.com", RoleID: role.ID}
	require.NoError(t, NewUserRepository(store).Create(ctx, author))

	posts := NewPostRepository(store)
	post := &entity.Post{Title: "t", Description: "d", AuthorID: author.ID}
	require.NoError(t, posts.Create(ctx, post))

	update := &entity.Post{ID: post.ID, Title: "new", Description: "body", AuthorID: uuid.New()}
	require.NoError(t, posts.Update(ctx, update))
	assert.Equal(t, author.ID, update.AuthorID)

	byAuthor, err := posts.FindByAuthorID(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "new", byAuthor[0].Title)
}

func TestPostRepository_CreateRequiresAuthor(t *testing.T) {
	err := NewPostRepository(NewStore()).Create(context.Background(), &entity.Post{Title: "t", AuthorID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRoleRepository_FindByName(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	for _, role := range entity.DefaultRoles() {
		require.NoError(t, NewRoleRepository(store).Create(ctx, role))
	}

	roles := NewRoleRepository(store)
	admin, err := roles.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Name)

	all, err := roles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = roles.FindByName(ctx, "moderator")
	assert.ErrorIs(t, err, repository.ErrRoleNotFound)

	err = roles.Create(ctx, &entity.Role{Name: entity.RoleAdmin})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	tm := NewTransactionManager(store)

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Email: "a@example.com", RoleID: role.ID}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := NewUserRepository(store).ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, &entity.User{Email: "a@example.com", RoleID: role.ID})
			panic("boom")
		})
	})

	all, err := NewUserRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	role := seedRole(t, store, entity.RoleRegular)
	tm := NewTransactionManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, &entity.User{Email: "a@example.com", RoleID: role.ID})
	})
	require.NoError(t, err)

	exists, err := NewUserRepository(store).ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
