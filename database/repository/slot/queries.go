// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultify/models"
)

// List returns slots matching the filter, ordered by date ascending then
// startTime ascending.
func (r *mongoSlotRepo) List(ctx context.Context, filter ListFilter) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Active != nil {
		query["isActive"] = *filter.Active
	}
	if !filter.From.IsZero() {
		// Coarse cut at the start of From's calendar day. Stored dates
		// are UTC midnight, so the cut is built in UTC too; callers
		// refine by end instant where needed.
		y, m, d := filter.From.Date()
		startOfDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		query["date"] = bson.M{"$gte": startOfDay}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
