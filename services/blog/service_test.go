package blog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"consultify/models"
)

type memBlogRepo struct {
	posts map[string]models.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: make(map[string]models.BlogPost)}
}

func (r *memBlogRepo) Create(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = post
	return &post, nil
}

func (r *memBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &post, nil
}

func (r *memBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	if _, ok := r.posts[post.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *memBlogRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.posts, id)
	return nil
}

func (r *memBlogRepo) list(match func(models.BlogPost) bool) []models.BlogPost {
	var posts []models.BlogPost
	for _, p := range r.posts {
		if match(p) {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts
}

func (r *memBlogRepo) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return r.list(func(models.BlogPost) bool { return true }), nil
}

func (r *memBlogRepo) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return r.list(func(p models.BlogPost) bool { return p.IsPublished }), nil
}

func (r *memBlogRepo) SearchPublished(ctx context.Context, query string) ([]models.BlogPost, error) {
	q := strings.ToLower(query)
	return r.list(func(p models.BlogPost) bool {
		if !p.IsPublished {
			return false
		}
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.SubTitle), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}), nil
}

func (r *memBlogRepo) Recent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	posts := r.list(func(p models.BlogPost) bool { return p.IsPublished })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *memBlogRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *memBlogRepo) CountDrafts(ctx context.Context) (int64, error) {
	var drafts int64
	for _, p := range r.posts {
		if !p.IsPublished {
			drafts++
		}
	}
	return drafts, nil
}

func (r *memBlogRepo) EnsureIndexes(ctx context.Context) error { return nil }

type memCommentRepo struct {
	comments map[string]models.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]models.Comment)}
}

func (r *memCommentRepo) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.IsApproved = false
	r.comments[comment.ID] = comment
	return &comment, nil
}

func (r *memCommentRepo) Approve(ctx context.Context, id string) error {
	comment, ok := r.comments[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	comment.IsApproved = true
	r.comments[id] = comment
	return nil
}

func (r *memCommentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) DeleteByBlogID(ctx context.Context, blogID string) (int64, error) {
	var removed int64
	for id, c := range r.comments {
		if c.BlogID == blogID {
			delete(r.comments, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memCommentRepo) ListAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range r.comments {
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *memCommentRepo) ListApprovedByBlog(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range r.comments {
		if c.BlogID == blogID && c.IsApproved {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r *memCommentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

func (r *memCommentRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeStorage struct {
	uploads int
	fail    bool
}

func (s *fakeStorage) UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if s.fail {
		return "", fmt.Errorf("cdn unreachable")
	}
	s.uploads++
	return "https://cdn.example.com/" + destFolder + "/" + localFilePath, nil
}

func (s *fakeStorage) DeleteImage(ctx context.Context, publicID string) error { return nil }

func newBlogService() (*DefaultBlogService, *memBlogRepo, *memCommentRepo, *fakeStorage) {
	blogs := newMemBlogRepo()
	comments := newMemCommentRepo()
	store := &fakeStorage{}
	return &DefaultBlogService{Blogs: blogs, Comments: comments, Storage: store}, blogs, comments, store
}

func publishedInput() PostInput {
	published := true
	return PostInput{
		Title:       "Retirement planning in your 40s",
		SubTitle:    "Start now",
		Description: "<p>Compound interest waits for no one.</p>",
		Category:    models.CategoryRetirement,
		IsPublished: &published,
	}
}

func TestAddPostRequiresImage(t *testing.T) {
	svc, _, _, _ := newBlogService()
	_, err := svc.AddPost(context.Background(), publishedInput(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPostRejectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newBlogService()
	in := publishedInput()
	in.Category = "Gossip"
	_, err := svc.AddPost(context.Background(), in, "cover.jpg")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPostUploadsImage(t *testing.T) {
	svc, _, _, store := newBlogService()
	post, err := svc.AddPost(context.Background(), publishedInput(), "cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, store.uploads)
	assert.Contains(t, post.Image, "blogs/cover.jpg")
}

func TestDeletePostCascadesComments(t *testing.T) {
	svc, _, comments, _ := newBlogService()
	post, err := svc.AddPost(context.Background(), publishedInput(), "cover.jpg")
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), post.ID, "Alex", "Great read")
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), post.ID, "Sam", "Very helpful")
	require.NoError(t, err)
	_, err = svc.AddComment(context.Background(), "other-post", "Kim", "Unrelated")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), post.ID))

	remaining, err := comments.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "other-post", remaining[0].BlogID)

	listed, err := svc.ListApprovedComments(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestApproveCommentIsIdempotent(t *testing.T) {
	svc, _, _, _ := newBlogService()
	comment, err := svc.AddComment(context.Background(), "post-1", "Alex", "Great read")
	require.NoError(t, err)

	require.NoError(t, svc.ApproveComment(context.Background(), comment.ID))
	require.NoError(t, svc.ApproveComment(context.Background(), comment.ID), "second approval is a no-op success")

	approved, err := svc.ListApprovedComments(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

func TestCommentsHiddenUntilApproved(t *testing.T) {
	svc, _, _, _ := newBlogService()
	comment, err := svc.AddComment(context.Background(), "post-1", "Alex", "Great read")
	require.NoError(t, err)

	visible, err := svc.ListApprovedComments(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, svc.ApproveComment(context.Background(), comment.ID))
	visible, err = svc.ListApprovedComments(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestSearchExcludesUnpublished(t *testing.T) {
	svc, _, _, _ := newBlogService()

	draft := publishedInput()
	draft.Title = "Quarterly tax deadlines"
	unpublished := false
	draft.IsPublished = &unpublished
	_, err := svc.AddPost(context.Background(), draft, "cover.jpg")
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), "Quarterly")
	require.NoError(t, err)
	assert.Empty(t, results, "a substring found only in a draft yields nothing publicly")
}

func TestSearchRequiresTerm(t *testing.T) {
	svc, _, _, _ := newBlogService()
	_, err := svc.Search(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTogglePublishRoundTrip(t *testing.T) {
	svc, _, _, _ := newBlogService()

	draft := publishedInput()
	unpublished := false
	draft.IsPublished = &unpublished
	post, err := svc.AddPost(context.Background(), draft, "cover.jpg")
	require.NoError(t, err)

	visible, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.TogglePublish(context.Background(), post.ID)
	require.NoError(t, err)
	visible, err = svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	_, err = svc.TogglePublish(context.Background(), post.ID)
	require.NoError(t, err)
	visible, err = svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestDashboardAggregates(t *testing.T) {
	svc, _, _, _ := newBlogService()

	published, err := svc.AddPost(context.Background(), publishedInput(), "cover.jpg")
	require.NoError(t, err)

	draft := publishedInput()
	unpublished := false
	draft.IsPublished = &unpublished
	_, err = svc.AddPost(context.Background(), draft, "cover.jpg")
	require.NoError(t, err)

	_, err = svc.AddComment(context.Background(), published.ID, "Alex", "Great read")
	require.NoError(t, err)

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Blogs)
	assert.Equal(t, int64(1), data.Comments)
	assert.Equal(t, int64(1), data.Drafts)
	assert.Len(t, data.RecentBlogs, 2)
}

func TestEditPostKeepsImageWithoutUpload(t *testing.T) {
	svc, _, _, store := newBlogService()
	post, err := svc.AddPost(context.Background(), publishedInput(), "cover.jpg")
	require.NoError(t, err)
	originalImage := post.Image

	edited, err := svc.EditPost(context.Background(), PostInput{ID: post.ID, Title: "New title"}, "")
	require.NoError(t, err)
	assert.Equal(t, "New title", edited.Title)
	assert.Equal(t, originalImage, edited.Image)
	assert.Equal(t, 1, store.uploads)
}

func TestEditPostNotFound(t *testing.T) {
	svc, _, _, _ := newBlogService()
	_, err := svc.EditPost(context.Background(), PostInput{ID: "missing"}, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentValidation(t *testing.T) {
	svc, _, _, _ := newBlogService()
	_, err := svc.AddComment(context.Background(), "post-1", "  ", "content")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddComment(context.Background(), "post-1", "Alex", " ")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.AddComment(context.Background(), "", "Alex", "content")
	assert.ErrorIs(t, err, ErrValidation)
}
