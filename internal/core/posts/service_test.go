package posts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, q ListQuery) (int, []*Post, error) {
	args := m.Called(ctx, q)
	if args.Get(1) == nil {
		return args.Int(0), nil, args.Error(2)
	}
	return args.Int(0), args.Get(1).([]*Post), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)
	authorID := uuid.New()

	repo.On("SlugExists", mock.Anything, "my-first-post").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Slug == "my-first-post" &&
			p.Status == StatusDraft &&
			p.Tags != nil && len(p.Tags) == 0 &&
			p.AuthorID == authorID &&
			!p.CreatedAt.IsZero() &&
			p.UpdatedAt.Equal(p.CreatedAt)
	})).Return(&Post{ID: uuid.New(), Slug: "my-first-post", Status: StatusDraft}, nil)

	post, err := svc.Create(context.Background(), CreatePostRequest{
		Title:   "My First Post",
		Content: "Hello",
	}, authorID)
	require.NoError(t, err)
	assert.Equal(t, "my-first-post", post.Slug)

	repo.AssertExpectations(t)
}

func TestCreate_DuplicateTitleGetsSuffix(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	repo.On("SlugExists", mock.Anything, "duplicate-title").Return(true, nil)
	repo.On("SlugExists", mock.Anything, "duplicate-title-1").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.Slug == "duplicate-title-1"
	})).Return(&Post{Slug: "duplicate-title-1"}, nil)

	post, err := svc.Create(context.Background(), CreatePostRequest{
		Title:   "Duplicate Title",
		Content: "Second post",
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "duplicate-title-1", post.Slug)
}

func TestCreate_SlugRaceSurfacesConflict(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	// Existence check passes, but a concurrent writer takes the slug
	// before our insert commits; the unique index reports the conflict.
	repo.On("SlugExists", mock.Anything, "racy-title").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrSlugTaken)

	_, err := svc.Create(context.Background(), CreatePostRequest{
		Title:   "Racy Title",
		Content: "body",
	}, uuid.New())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestList_DraftWithoutAuth(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	_, err := svc.List(context.Background(), ListOptions{Status: StatusDraft}, uuid.Nil)
	assert.ErrorIs(t, err, ErrAuthRequired)
	repo.AssertNotCalled(t, "List")
}

func TestList_AppliesPolicyAndPaginates(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)
	requester := uuid.New()

	repo.On("List", mock.Anything, ListQuery{
		Status:   StatusDraft,
		AuthorID: requester,
		Page:     1,
		Limit:    10,
	}).Return(1, []*Post{{Status: StatusDraft, AuthorID: requester}}, nil)

	result, err := svc.List(context.Background(), ListOptions{Status: StatusDraft}, requester)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, 1, result.Total)
	assert.Len(t, result.Items, 1)
}

func TestList_EmptyPageIsNotNil(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	repo.On("List", mock.Anything, mock.Anything).Return(0, nil, nil)

	result, err := svc.List(context.Background(), ListOptions{}, uuid.Nil)
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestUpdate_InvalidID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	_, err := svc.Update(context.Background(), "not-a-uuid", UpdatePostRequest{}, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidID)
	repo.AssertNotCalled(t, "GetByID")
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	owner := uuid.New()
	postID := uuid.New()
	created := time.Now().UTC().Add(-time.Hour)
	existing := &Post{
		ID:        postID,
		Title:     "Old Title",
		Slug:      "old-title",
		Content:   "old content",
		AuthorID:  owner,
		Status:    StatusDraft,
		Tags:      []string{"old"},
		CreatedAt: created,
		UpdatedAt: created,
	}

	repo.On("GetByID", mock.Anything, postID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		// Title untouched, content and status overwritten, slug immutable,
		// updated timestamp refreshed.
		return p.Title == "Old Title" &&
			p.Content == "new content" &&
			p.Status == StatusPublished &&
			p.Slug == "old-title" &&
			p.UpdatedAt.After(created)
	})).Return(existing, nil)

	_, err := svc.Update(context.Background(), postID.String(), UpdatePostRequest{
		Content: "new content",
		Status:  StatusPublished,
	}, owner)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	postID := uuid.New()
	repo.On("GetByID", mock.Anything, postID).Return(&Post{ID: postID, AuthorID: uuid.New()}, nil)

	_, err := svc.Update(context.Background(), postID.String(), UpdatePostRequest{Title: "x"}, uuid.New())
	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdate_DeletedPostNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	owner := uuid.New()
	postID := uuid.New()
	deletedAt := time.Now().UTC()
	repo.On("GetByID", mock.Anything, postID).Return(&Post{
		ID:        postID,
		AuthorID:  owner,
		DeletedAt: &deletedAt,
	}, nil)

	_, err := svc.Update(context.Background(), postID.String(), UpdatePostRequest{Title: "x"}, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_SetsDeletedAt(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	owner := uuid.New()
	postID := uuid.New()
	repo.On("GetByID", mock.Anything, postID).Return(&Post{ID: postID, AuthorID: owner}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.DeletedAt != nil
	})).Return(&Post{ID: postID}, nil)

	err := svc.Delete(context.Background(), postID.String(), owner)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestDelete_InvalidID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewPostService(repo)

	err := svc.Delete(context.Background(), "12345", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidID)
}
