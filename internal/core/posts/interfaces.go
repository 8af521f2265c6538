package posts

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic interface for posts
type Service interface {
	// Create generates a unique slug from the title and persists a new
	// post owned by authorID.
	Create(ctx context.Context, req CreatePostRequest, authorID uuid.UUID) (*Post, error)

	// List returns one page of posts visible to the requester, newest
	// first. requesterID is uuid.Nil for anonymous callers.
	List(ctx context.Context, opts ListOptions, requesterID uuid.UUID) (*ListResult, error)

	// GetBySlug fetches a published, not-deleted post. There is no
	// draft-by-slug access path.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Update applies a partial patch to the requester's own post.
	Update(ctx context.Context, id string, req UpdatePostRequest, requesterID uuid.UUID) (*Post, error)

	// Delete soft-deletes the requester's own post. The record remains
	// in storage.
	Delete(ctx context.Context, id string, requesterID uuid.UUID) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post. Returns ErrSlugTaken when the slug's
	// unique constraint is violated.
	Create(ctx context.Context, post *Post) (*Post, error)

	// SlugExists reports whether any post, including soft-deleted ones,
	// already uses the slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// GetByID retrieves a post by ID regardless of status or deletion;
	// the authorization guard decides what the caller may see or do.
	// Returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetBySlug retrieves a published, not-deleted post with its author
	// populated. Returns ErrNotFound when no row matches.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// List returns the total match count and one page of posts for the
	// given query, ordered by creation time descending, authors populated.
	List(ctx context.Context, q ListQuery) (int, []*Post, error)

	// Update persists the post's mutable fields and timestamps.
	Update(ctx context.Context, post *Post) (*Post, error)
}
