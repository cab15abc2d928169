package usecase

import (
	"context"

	"bulletin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines a new post. AuthorID always comes from the resolved identity.
type CreatePostInput struct {
	Title       string
	Description string
	AuthorID    uuid.UUID
}

// UpdatePostInput carries the fields to change. Nil fields are left untouched.
type UpdatePostInput struct {
	Title       *string
	Description *string
}

// PostUsecase defines the post operations.
type PostUsecase interface {
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*entity.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error

	// PostAuthor resolves the owner of a post for admin-or-owner gates.
	PostAuthor(ctx context.Context, postID uuid.UUID) (uuid.UUID, error)
}
