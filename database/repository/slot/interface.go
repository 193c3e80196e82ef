// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"
	"time"

	"consultify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotFull is returned by IncrementParticipants when the slot is
// already at capacity.
var ErrSlotFull = errors.New("slot is at capacity")

// ListFilter narrows a slot listing. Nil/zero fields are not applied.
type ListFilter struct {
	// Active filters by isActive when non-nil.
	Active *bool
	// From keeps only slots whose date is on or after this instant's
	// calendar day. Zero means no date filter.
	From time.Time
}

type SlotRepository interface {
	CreateMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error)
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	List(ctx context.Context, filter ListFilter) ([]models.Slot, error)
	Update(ctx context.Context, id string, patch models.SlotPatch) (*models.Slot, error)
	Delete(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, id string) (*models.Slot, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	return &mongoSlotRepo{
		coll: db.Collection("timeslots"),
	}
}
