// Package usecase implements the business logic for breakfast posts.
package usecase

import (
	"context"
	"fmt"

	authentity "dawn_eats/internal/feature/auth/domain/entity"
	"dawn_eats/internal/feature/post/domain/entity"
	"dawn_eats/internal/shared/pagination"
)

// PostRepository abstracts the persistence layer for posts.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PostRepository interface {
	// List returns posts ordered by id with their authors.
	List(ctx context.Context, offset, limit int) ([]entity.Post, error)

	// Create inserts the post row only; associations are not written.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns ErrPostNotFound when no post has the id.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)
}

// CreatePostInput carries the client-settable fields of a new post.
type CreatePostInput struct {
	Title       string
	Description *string
	ImageURL    *string
}

// PostUsecase provides business logic for post operations.
type PostUsecase struct {
	repo PostRepository
}

// NewPostUsecase creates a new PostUsecase with the given repository.
func NewPostUsecase(r PostRepository) *PostUsecase {
	return &PostUsecase{repo: r}
}

// List returns one page of posts. limit is capped at pagination.MaxLimit.
func (u *PostUsecase) List(ctx context.Context, skip, limit int) ([]entity.Post, error) {
	skip, limit = pagination.Clamp(skip, limit)
	if limit == 0 {
		return []entity.Post{}, nil
	}
	posts, err := u.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Create stores a post owned by owner. The owner always comes from the
// resolved identity, never from the request body.
func (u *PostUsecase) Create(ctx context.Context, owner *authentity.User, in CreatePostInput) (*entity.Post, error) {
	if owner == nil || owner.ID == 0 {
		return nil, ErrOwnerRequired
	}

	post := &entity.Post{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      owner.ID,
	}
	if err := u.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.Author = owner
	return post, nil
}

// Get returns the post with id or ErrPostNotFound.
func (u *PostUsecase) Get(ctx context.Context, id uint) (*entity.Post, error) {
	return u.repo.FindByID(ctx, id)
}
