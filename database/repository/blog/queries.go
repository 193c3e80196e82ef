// File: database/repository/blog/queries.go
package blogRepo

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultify/models"
)

func (r *mongoBlogRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAll returns every post, newest first.
func (r *mongoBlogRepo) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// ListPublished returns only posts visible to the public.
func (r *mongoBlogRepo) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	return r.find(ctx, bson.M{"isPublished": true})
}

// SearchPublished does a case-insensitive substring match over title,
// subTitle and description, restricted to published posts.
func (r *mongoBlogRepo) SearchPublished(ctx context.Context, query string) ([]models.BlogPost, error) {
	regex := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"isPublished": true,
		"$or": bson.A{
			bson.M{"title": regex},
			bson.M{"subTitle": regex},
			bson.M{"description": regex},
		},
	}
	return r.find(ctx, filter)
}

// Recent returns the N most recent published posts.
func (r *mongoBlogRepo) Recent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"isPublished": true}, opts)
}

func (r *mongoBlogRepo) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoBlogRepo) CountDrafts(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"isPublished": false})
}
