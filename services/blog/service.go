// File: services/blog/service.go
package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	blogRepo "consultify/database/repository/blog"
	commentRepo "consultify/database/repository/comment"
	"consultify/models"
	"consultify/services/storage"
	"consultify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrValidation marks a post or comment missing required fields.
	ErrValidation = errors.New("missing required fields")
	// ErrNotFound is returned when a blog or comment id does not resolve.
	ErrNotFound = errors.New("not found")
)

const (
	postImageFolder   = "blogs"
	editorImageFolder = "blog-content"
)

// PostInput is the editable part of a blog post, carried as a JSON
// string alongside the multipart image.
type PostInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	SubTitle    string `json:"subTitle"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublished *bool  `json:"isPublished"`
}

// BlogService covers content CRUD plus the comment moderation gate.
type BlogService interface {
	AddPost(ctx context.Context, in PostInput, imagePath string) (*models.BlogPost, error)
	EditPost(ctx context.Context, in PostInput, imagePath string) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) (*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	Search(ctx context.Context, query string) ([]models.BlogPost, error)
	Recent(ctx context.Context, limit int) ([]models.BlogPost, error)
	ListAllAdmin(ctx context.Context) ([]models.BlogPost, error)
	UploadEditorImage(ctx context.Context, imagePath string) (string, error)

	AddComment(ctx context.Context, blogID, name, content string) (*models.Comment, error)
	ApproveComment(ctx context.Context, id string) error
	DeleteComment(ctx context.Context, id string) error
	ListApprovedComments(ctx context.Context, blogID string) ([]models.Comment, error)
	ListAllComments(ctx context.Context) ([]models.Comment, error)

	Dashboard(ctx context.Context) (*models.DashboardData, error)
}

// DefaultBlogService implements BlogService over the blog and comment
// repositories and the image storage collaborator.
type DefaultBlogService struct {
	Blogs    blogRepo.BlogRepository
	Comments commentRepo.CommentRepository
	Storage  storage.StorageService
}

func (s *DefaultBlogService) AddPost(ctx context.Context, in PostInput, imagePath string) (*models.BlogPost, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" || in.Category == "" || imagePath == "" {
		return nil, ErrValidation
	}
	if !models.IsValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}

	imageURL, err := s.Storage.UploadImage(ctx, imagePath, postImageFolder)
	if err != nil {
		return nil, err
	}

	published := false
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return s.Blogs.Create(ctx, models.BlogPost{
		Title:       in.Title,
		SubTitle:    in.SubTitle,
		Description: in.Description,
		Category:    in.Category,
		Image:       imageURL,
		IsPublished: published,
	})
}

func (s *DefaultBlogService) EditPost(ctx context.Context, in PostInput, imagePath string) (*models.BlogPost, error) {
	post, err := s.Blogs.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if imagePath != "" {
		imageURL, err := s.Storage.UploadImage(ctx, imagePath, postImageFolder)
		if err != nil {
			return nil, err
		}
		post.Image = imageURL
	}
	if in.Title != "" {
		post.Title = in.Title
	}
	if in.SubTitle != "" {
		post.SubTitle = in.SubTitle
	}
	if in.Description != "" {
		post.Description = in.Description
	}
	if in.Category != "" {
		if !models.IsValidCategory(in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
		}
		post.Category = in.Category
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}

	if err := s.Blogs.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and then its comments. Mongo gives no
// transaction here; a crash in between leaves orphaned comments, which
// never surface publicly because comment listings filter by blog id.
func (s *DefaultBlogService) DeletePost(ctx context.Context, id string) error {
	if err := s.Blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	removed, err := s.Comments.DeleteByBlogID(ctx, id)
	if err != nil {
		utils.GetLogger().Error("blog: cascade comment delete failed",
			zap.String("blogId", id), zap.Error(err))
		return err
	}
	if removed > 0 {
		utils.GetLogger().Info("blog: cascaded comment delete",
			zap.String("blogId", id), zap.Int64("removed", removed))
	}
	return nil
}

func (s *DefaultBlogService) TogglePublish(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post.IsPublished = !post.IsPublished
	if err := s.Blogs.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *DefaultBlogService) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *DefaultBlogService) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return s.Blogs.ListPublished(ctx)
}

func (s *DefaultBlogService) Search(ctx context.Context, query string) ([]models.BlogPost, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: missing search term", ErrValidation)
	}
	return s.Blogs.SearchPublished(ctx, query)
}

func (s *DefaultBlogService) Recent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.Blogs.Recent(ctx, limit)
}

func (s *DefaultBlogService) ListAllAdmin(ctx context.Context) ([]models.BlogPost, error) {
	return s.Blogs.ListAll(ctx)
}

func (s *DefaultBlogService) UploadEditorImage(ctx context.Context, imagePath string) (string, error) {
	if imagePath == "" {
		return "", fmt.Errorf("%w: no file provided", ErrValidation)
	}
	return s.Storage.UploadImage(ctx, imagePath, editorImageFolder)
}

func (s *DefaultBlogService) AddComment(ctx context.Context, blogID, name, content string) (*models.Comment, error) {
	if blogID == "" || strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}
	return s.Comments.Create(ctx, models.Comment{
		BlogID:  blogID,
		Name:    strings.TrimSpace(name),
		Content: strings.TrimSpace(content),
	})
}

// ApproveComment is idempotent: approving an approved comment succeeds.
func (s *DefaultBlogService) ApproveComment(ctx context.Context, id string) error {
	if err := s.Comments.Approve(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *DefaultBlogService) DeleteComment(ctx context.Context, id string) error {
	if err := s.Comments.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *DefaultBlogService) ListApprovedComments(ctx context.Context, blogID string) ([]models.Comment, error) {
	return s.Comments.ListApprovedByBlog(ctx, blogID)
}

func (s *DefaultBlogService) ListAllComments(ctx context.Context) ([]models.Comment, error) {
	return s.Comments.ListAll(ctx)
}

// Dashboard aggregates counts plus the five most recent posts,
// published or not.
func (s *DefaultBlogService) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	blogs, err := s.Blogs.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	drafts, err := s.Blogs.CountDrafts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.Blogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return &models.DashboardData{
		Blogs:       blogs,
		Comments:    comments,
		Drafts:      drafts,
		RecentBlogs: recent,
	}, nil
}
