package posts

import (
	"time"

	"github.com/google/uuid"

	"Nobzo/internal/core/users"
)

// Post status values
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post is a blog post. DeletedAt non-nil means soft-deleted: the row stays
// in storage but is excluded from every read path. AuthorID never changes
// after creation.
type Post struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Title     string            `json:"title" db:"title"`
	Slug      string            `json:"slug" db:"slug"`
	Content   string            `json:"content" db:"content"`
	AuthorID  uuid.UUID         `json:"authorId" db:"author_id"`
	Status    string            `json:"status" db:"status"`
	Tags      []string          `json:"tags" db:"tags"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time        `json:"deletedAt,omitempty" db:"deleted_at"`
	Author    *users.PublicUser `json:"author,omitempty"`
}

// CreatePostRequest is the input for creating a post. Status defaults to
// draft and tags to an empty set when unspecified.
type CreatePostRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"omitempty"`
	Status  string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdatePostRequest is a partial patch: only fields that are present and
// non-empty overwrite the stored post.
type UpdatePostRequest struct {
	Title   string   `json:"title" validate:"omitempty"`
	Content string   `json:"content" validate:"omitempty"`
	Tags    []string `json:"tags" validate:"omitempty"`
	Status  string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// ListOptions are the caller-supplied list query parameters before the
// visibility policy has been applied.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
	Tag    string
	Author string
	Status string
}

// ListResult is one page of posts plus the total match count.
type ListResult struct {
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int     `json:"total"`
	Items []*Post `json:"items"`
}
