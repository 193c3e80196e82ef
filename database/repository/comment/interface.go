// File: database/repository/comment/interface.go
package commentRepo

import (
	"context"

	"consultify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CommentRepository interface {
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteByBlogID(ctx context.Context, blogID string) (int64, error)
	ListAll(ctx context.Context) ([]models.Comment, error)
	ListApprovedByBlog(ctx context.Context, blogID string) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoCommentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommentRepo constructs a new MongoDB CommentRepository.
func NewMongoCommentRepo(db *mongo.Database) CommentRepository {
	return &mongoCommentRepo{
		coll: db.Collection("comments"),
	}
}
