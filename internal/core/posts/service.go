package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

// Create generates a unique slug for the title and persists a new post.
// Slug generation and the insert are not atomic: a concurrent creation with
// the same title can slip between the existence check and the write, in
// which case the unique index rejects the insert and ErrSlugTaken bubbles
// up as a retryable conflict.
func (s *postService) Create(ctx context.Context, req CreatePostRequest, authorID uuid.UUID) (*Post, error) {
	slug, err := GenerateSlug(ctx, req.Title, s.repo.SlugExists)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	post := &Post{
		Title:     strings.TrimSpace(req.Title),
		Slug:      slug,
		Content:   req.Content,
		AuthorID:  authorID,
		Status:    status,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	slog.Info("post created",
		slog.String("postId", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// List applies the visibility policy and returns one page of posts plus
// the total match count, newest first.
func (s *postService) List(ctx context.Context, opts ListOptions, requesterID uuid.UUID) (*ListResult, error) {
	q, err := BuildListQuery(requesterID, opts)
	if err != nil {
		return nil, err
	}

	total, items, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if items == nil {
		items = []*Post{}
	}

	return &ListResult{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Items: items,
	}, nil
}

// GetBySlug fetches a published, not-deleted post by slug.
func (s *postService) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Update applies a partial patch to the requester's own post. Only fields
// present and non-empty in the patch overwrite stored values; the author
// and creation time are immutable.
func (s *postService) Update(ctx context.Context, id string, req UpdatePostRequest, requesterID uuid.UUID) (*Post, error) {
	post, err := s.loadOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		post.Title = strings.TrimSpace(req.Title)
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Status != "" {
		post.Status = req.Status
	}
	post.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, post)
}

// Delete soft-deletes the requester's own post by stamping DeletedAt. The
// record is never removed from storage.
func (s *postService) Delete(ctx context.Context, id string, requesterID uuid.UUID) error {
	post, err := s.loadOwned(ctx, id, requesterID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	post.DeletedAt = &now
	post.UpdatedAt = now

	if _, err := s.repo.Update(ctx, post); err != nil {
		return err
	}

	slog.Info("post soft-deleted", slog.String("postId", post.ID.String()))
	return nil
}

// loadOwned parses the id, loads the post, and runs the mutation guard.
func (s *postService) loadOwned(ctx context.Context, id string, requesterID uuid.UUID) (*Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := AuthorizeMutation(post, requesterID); err != nil {
		return nil, err
	}
	return post, nil
}
