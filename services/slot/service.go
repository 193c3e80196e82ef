// File: services/slot/service.go
package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	slotRepo "consultify/database/repository/slot"
	"consultify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrValidation marks input that fails slot invariants.
	ErrValidation = errors.New("invalid slot input")
	// ErrNotFound is returned when a slot id does not resolve.
	ErrNotFound = errors.New("time slot not found")
	// ErrSlotFull is returned when incrementing a slot at capacity.
	ErrSlotFull = slotRepo.ErrSlotFull
)

// AdminFilters narrows the admin slot listing. Unlike the public
// listing, past and full slots are included by default.
type AdminFilters struct {
	IncludePast bool
	IncludeFull bool
	Active      *bool
}

// SlotService is the administrator's slot manager.
type SlotService interface {
	Create(ctx context.Context, inputs []SlotInput) ([]models.Slot, error)
	List(ctx context.Context, now time.Time, f AdminFilters) ([]models.Slot, error)
	Update(ctx context.Context, id string, patch models.SlotPatch) (*models.Slot, error)
	Delete(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, id string) (*models.Slot, error)
}

// DefaultSlotService implements SlotService over the slot repository.
type DefaultSlotService struct {
	Repo slotRepo.SlotRepository
	Loc  *time.Location
}

func (s *DefaultSlotService) Create(ctx context.Context, inputs []SlotInput) ([]models.Slot, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: provide at least one slot", ErrValidation)
	}
	slots := make([]models.Slot, len(inputs))
	for i := range inputs {
		if err := inputs[i].Validate(); err != nil {
			return nil, err
		}
		slots[i] = inputs[i].ToModel()
	}
	return s.Repo.CreateMany(ctx, slots)
}

// List is the flexible admin listing; store failures surface to the
// caller, unlike the fail-open public path.
func (s *DefaultSlotService) List(ctx context.Context, now time.Time, f AdminFilters) ([]models.Slot, error) {
	repoFilter := slotRepo.ListFilter{Active: f.Active}
	if !f.IncludePast {
		repoFilter.From = now.In(s.Loc)
	}

	slots, err := s.Repo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	if f.IncludeFull {
		return slots, nil
	}

	result := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.CurrentParticipants < slot.MaxParticipants {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (s *DefaultSlotService) Update(ctx context.Context, id string, patch models.SlotPatch) (*models.Slot, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	updated, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *DefaultSlotService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// IncrementParticipants reserves one seat through the repository's
// conditional update. Admin-only today; the atomic guard exists so a
// future public booking-confirmation path cannot overbook.
func (s *DefaultSlotService) IncrementParticipants(ctx context.Context, id string) (*models.Slot, error) {
	updated, err := s.Repo.IncrementParticipants(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func validatePatch(patch models.SlotPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if patch.StartTime != nil {
		if _, err := time.Parse("15:04", *patch.StartTime); err != nil {
			return fmt.Errorf("%w: startTime must be HH:MM", ErrValidation)
		}
	}
	if patch.EndTime != nil {
		if _, err := time.Parse("15:04", *patch.EndTime); err != nil {
			return fmt.Errorf("%w: endTime must be HH:MM", ErrValidation)
		}
	}
	if patch.MaxParticipants != nil && *patch.MaxParticipants < 1 {
		return fmt.Errorf("%w: maxParticipants must be at least 1", ErrValidation)
	}
	if patch.CurrentParticipants != nil && *patch.CurrentParticipants < 0 {
		return fmt.Errorf("%w: currentParticipants cannot be negative", ErrValidation)
	}
	return nil
}
