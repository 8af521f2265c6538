package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Nobzo/internal/core/posts"
	"Nobzo/internal/core/users"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post. A unique-index violation on the slug is the
// arbiter of the slug-generation race and surfaces as ErrSlugTaken.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (title, slug, content, author_id, status, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, slug, content, author_id, status, tags, created_at, updated_at, deleted_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Slug, post.Content, post.AuthorID, post.Status,
		pq.Array(post.Tags), post.CreatedAt, post.UpdatedAt,
	).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.AuthorID,
		&post.Status, pq.Array(&post.Tags), &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "posts_slug_key") {
			return nil, posts.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// SlugExists reports whether any post already uses the slug. Soft-deleted
// posts are deliberately included: a slug is never recycled.
func (r *postgresPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`

	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return exists, nil
}

// GetByID retrieves a post by ID regardless of status or deletion state.
// The caller's authorization guard decides what to do with a deleted row.
func (r *postgresPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		SELECT id, title, slug, content, author_id, status, tags, created_at, updated_at, deleted_at
		FROM posts
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.AuthorID,
		&post.Status, pq.Array(&post.Tags), &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// GetBySlug retrieves a published, not-deleted post with its author fields
// populated. Drafts and soft-deleted posts are invisible here by design.
func (r *postgresPostRepo) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	post := &posts.Post{Author: &users.PublicUser{}}
	query := `
		SELECT p.id, p.title, p.slug, p.content, p.author_id, p.status, p.tags,
		       p.created_at, p.updated_at, p.deleted_at,
		       u.id, u.name, u.email
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		WHERE p.slug = $1 AND p.status = 'published' AND p.deleted_at IS NULL`

	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.AuthorID,
		&post.Status, pq.Array(&post.Tags), &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
		&post.Author.ID, &post.Author.Name, &post.Author.Email,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// List returns the total match count and one page for the given query,
// newest first, with author fields populated.
func (r *postgresPostRepo) List(ctx context.Context, q posts.ListQuery) (int, []*posts.Post, error) {
	// Build WHERE clauses from the visibility-policy query
	whereConditions := []string{
		"p.deleted_at IS NULL",
		"p.status = $1",
	}
	args := []interface{}{q.Status}
	paramIndex := 2

	if q.AuthorID != uuid.Nil {
		whereConditions = append(whereConditions, fmt.Sprintf("p.author_id = $%d", paramIndex))
		args = append(args, q.AuthorID)
		paramIndex++
	}

	if q.Search != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, "%"+escapeLike(q.Search)+"%")
		paramIndex++
	}

	if q.Tag != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("$%d = ANY(p.tags)", paramIndex))
		args = append(args, q.Tag)
		paramIndex++
	}

	whereClause := strings.Join(whereConditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p WHERE %s`, whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.slug, p.content, p.author_id, p.status, p.tags,
		       p.created_at, p.updated_at, p.deleted_at,
		       u.id, u.name, u.email
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var items []*posts.Post
	for rows.Next() {
		post := &posts.Post{Author: &users.PublicUser{}}
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Content, &post.AuthorID,
			&post.Status, pq.Array(&post.Tags), &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
			&post.Author.ID, &post.Author.Name, &post.Author.Email,
		); err != nil {
			return 0, nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		items = append(items, post)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return total, items, nil
}

// Update persists the post's mutable fields. The author and creation time
// are never written back.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET title = $2, content = $3, status = $4, tags = $5, updated_at = $6, deleted_at = $7
		WHERE id = $1
		RETURNING id, title, slug, content, author_id, status, tags, created_at, updated_at, deleted_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.Status, pq.Array(post.Tags),
		post.UpdatedAt, post.DeletedAt,
	).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content, &post.AuthorID,
		&post.Status, pq.Array(&post.Tags), &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// escapeLike escapes LIKE metacharacters so a search term matches as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
