package memory

import (
	"context"

	"bulletin/internal/domain/entity"
	domainerrors "bulletin/internal/domain/errors"
	"bulletin/internal/domain/repository"

	"github.com/google/uuid"
)

type postRepository struct {
	store *Store
	undo  *undoLog
}

// NewPostRepository returns a PostRepository over store.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

func (r *postRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	post, ok := r.store.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return &post, nil
}

func (r *postRepository) FindAll(_ context.Context) ([]*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	posts := make([]*entity.Post, 0, len(r.store.posts))
	for _, post := range r.store.posts {
		posts = append(posts, &post)
	}
	sortPosts(posts)

	return posts, nil
}

func (r *postRepository) FindByAuthorID(_ context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var posts []*entity.Post
	for _, post := range r.store.posts {
		if post.AuthorID == authorID {
			posts = append(posts, &post)
		}
	}
	sortPosts(posts)

	return posts, nil
}

func (r *postRepository) Create(_ context.Context, post *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[post.AuthorID]; !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown author")
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := r.store.now()
	post.CreatedAt = now
	post.UpdatedAt = now

	id := post.ID
	r.store.posts[id] = *post
	r.undo.record(func() { delete(r.store.posts, id) })

	return nil
}

// Update replaces title and description. The author never changes.
func (r *postRepository) Update(_ context.Context, post *entity.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.posts[post.ID]
	if !ok {
		return repository.ErrPostNotFound
	}

	updated := previous
	updated.Title = post.Title
	updated.Description = post.Description
	updated.UpdatedAt = r.store.now()

	r.store.posts[post.ID] = updated
	r.undo.record(func() { r.store.posts[previous.ID] = previous })

	*post = updated

	return nil
}

func (r *postRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.posts[id]
	if !ok {
		return repository.ErrPostNotFound
	}

	delete(r.store.posts, id)
	r.undo.record(func() { r.store.posts[id] = previous })

	return nil
}
