package impl

import (
	"context"
	"testing"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/infra/persistence/memory"
	mockRepo "bulletin/internal/mocks/repository"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, roles := seededStore(t)

	author := &entity.User{Email: "a@example.com", PasswordHash: "hash", RoleID: roles[entity.RoleRegular].ID}
	require.NoError(t, memory.NewUserRepository(store).Create(ctx, author))

	svc := NewPostService(PostServiceParams{PostRepo: memory.NewPostRepository(store), Logger: newDiscardLogger()})

	post, err := svc.CreatePost(ctx, usecase.CreatePostInput{Title: "Hello", Description: "World", AuthorID: author.ID})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, post.ID)

	authorID, err := svc.PostAuthor(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, authorID)

	title := "Hello again"
	updated, err := svc.UpdatePost(ctx, post.ID, usecase.UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "World", updated.Description)

	byAuthor, err := svc.ListPostsByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	all, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeletePost(ctx, post.ID))

	_, err = svc.GetPost(ctx, post.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))

	_, err = svc.PostAuthor(ctx, post.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))

	assert.True(t, errors.Is(svc.DeletePost(ctx, post.ID), domainerrors.ErrPostNotFound))
}

func TestPostService_CreateWithUnknownAuthor(t *testing.T) {
	store, _ := seededStore(t)
	svc := NewPostService(PostServiceParams{PostRepo: memory.NewPostRepository(store), Logger: newDiscardLogger()})

	_, err := svc.CreatePost(context.Background(), usecase.CreatePostInput{Title: "t", Description: "d", AuthorID: uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find post")

	t.Run("lookup failure is not reported as missing", func(t *testing.T) {
		postRepo := mockRepo.NewMockPostRepository(t)
		postRepo.EXPECT().FindByID(mock.Anything, postID).Return(nil, dbErr).Twice()
		svc := NewPostService(PostServiceParams{PostRepo: postRepo, Logger: newDiscardLogger()})

		_, err := svc.GetPost(ctx, postID)
		assert.True(t, errors.Is(err, dbErr))
		assert.False(t, errors.Is(err, domainerrors.ErrNotFound))

		_, err = svc.PostAuthor(ctx, postID)
		assert.True(t, errors.Is(err, dbErr))
		assert.False(t, errors.Is(err, domainerrors.ErrPostNotFound))
	})

	t.Run("post removed between read and write", func(t *testing.T) {
		postRepo := mockRepo.NewMockPostRepository(t)
		postRepo.EXPECT().FindByID(mock.Anything, postID).
			Return(&entity.Post{ID: postID, Title: "t", Description: "d", AuthorID: uuid.New()}, nil)
		postRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Post")).
			Return(repository.ErrPostNotFound)
		svc := NewPostService(PostServiceParams{PostRepo: postRepo, Logger: newDiscardLogger()})

		title := "new"
		_, err := svc.UpdatePost(ctx, postID, usecase.UpdatePostInput{Title: &title})
		assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("create failure is wrapped", func(t *testing.T) {
		postRepo := mockRepo.NewMockPostRepository(t)
		postRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Post")).Return(dbErr)
		svc := NewPostService(PostServiceParams{PostRepo: postRepo, Logger: newDiscardLogger()})

		_, err := svc.CreatePost(ctx, usecase.CreatePostInput{Title: "t", Description: "d", AuthorID: uuid.New()})
		assert.True(t, errors.Is(err, dbErr))
	})
}
