// File: database/repository/blog/interface.go
package blogRepo

import (
	"context"

	"consultify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BlogRepository interface {
	Create(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	SearchPublished(ctx context.Context, query string) ([]models.BlogPost, error)
	Recent(ctx context.Context, limit int) ([]models.BlogPost, error)
	CountAll(ctx context.Context) (int64, error)
	CountDrafts(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo constructs a new MongoDB BlogRepository.
func NewMongoBlogRepo(db *mongo.Database) BlogRepository {
	return &mongoBlogRepo{
		coll: db.Collection("blogs"),
	}
}
