package impl

import (
	"context"
	"log/slog"

	deliverycontext "bulletin/internal/delivery/context"
	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"
	"bulletin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

func (srv *postService) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}

func (srv *postService) GetPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, mapPostLookupError(err)
	}

	return post, nil
}

func (srv *postService) CreatePost(ctx context.Context, input usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    input.AuthorID,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("authorID", post.AuthorID))

	return post, nil
}

// UpdatePost changes title and description only. Ownership is fixed at creation.
func (srv *postService) UpdatePost(ctx context.Context, postID uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, mapPostLookupError(err)
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, mapPostLookupError(err)
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", post.ID))

	return post, nil
}

func (srv *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if err := srv.postRepo.Delete(ctx, postID); err != nil {
		return mapPostLookupError(err)
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID))

	return nil
}

func (srv *postService) PostAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return uuid.Nil, mapPostLookupError(err)
	}

	return post.AuthorID, nil
}

func mapPostLookupError(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return domainerrors.ErrPostNotFound
	}

	return err
}
