// File: services/availability/engine.go
package availability

import (
	"context"
	"fmt"
	"time"

	slotRepo "consultify/database/repository/slot"
	"consultify/models"
	"consultify/utils"

	"go.uber.org/zap"
)

// Engine answers "what can the public book" and "is this slot still
// bookable" from the slot store and the current instant.
type Engine struct {
	Repo slotRepo.SlotRepository
	// Loc is the canonical zone shared by server and clients; all
	// date+HH:MM combinations resolve in it.
	Loc *time.Location
}

// Filters narrows the public slot listing.
type Filters struct {
	// Active filters by isActive; nil applies no filter. The public
	// handler defaults the query param to "true", so only an explicit
	// non-boolean value reaches here as nil.
	Active *bool
	// IncludePast keeps slots whose end instant has already passed.
	IncludePast bool
	// IncludeFull keeps slots at capacity.
	IncludeFull bool
}

// CombineDateTime maps a calendar date plus an "HH:MM" wall-clock string
// to a single absolute instant in loc. Dates are stored as UTC midnight
// of the calendar day, so the day is read in UTC; reading it in loc
// would shift it back a day in any zone west of UTC.
func CombineDateTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("availability: invalid time of day %q: %w", hhmm, err)
	}
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// EndInstant resolves the slot's end as an absolute instant.
func (e *Engine) EndInstant(slot *models.Slot) (time.Time, error) {
	return CombineDateTime(slot.Date, slot.EndTime, e.Loc)
}

// IsBookable is the single source of truth for slot eligibility: active,
// below capacity, and ending strictly after now. A slot with a malformed
// end time is never bookable.
func (e *Engine) IsBookable(slot *models.Slot, now time.Time) bool {
	if !slot.IsActive {
		return false
	}
	if slot.CurrentParticipants >= slot.MaxParticipants {
		return false
	}
	end, err := e.EndInstant(slot)
	if err != nil {
		return false
	}
	return end.After(now)
}

// ListPublic returns the slots offered to the public widget, ordered by
// date then start time. Store failures are logged and surface as an
// empty list: the widget shows "no availability" rather than an error.
func (e *Engine) ListPublic(ctx context.Context, now time.Time, f Filters) []models.Slot {
	repoFilter := slotRepo.ListFilter{Active: f.Active}
	if !f.IncludePast {
		repoFilter.From = now.In(e.Loc)
	}

	slots, err := e.Repo.List(ctx, repoFilter)
	if err != nil {
		utils.GetLogger().Error("availability: slot listing failed", zap.Error(err))
		return []models.Slot{}
	}

	result := make([]models.Slot, 0, len(slots))
	for _, s := range slots {
		if !f.IncludePast {
			end, err := CombineDateTime(s.Date, s.EndTime, e.Loc)
			if err != nil || !end.After(now) {
				continue
			}
		}
		if !f.IncludeFull && s.CurrentParticipants >= s.MaxParticipants {
			continue
		}
		result = append(result, s)
	}
	return result
}

// GroupByDay builds a mapping from calendar-day key ("2006-01-02") to
// the ordered bookable slots on that day. The key comes from the stored
// UTC-midnight date, matching CombineDateTime. A day is markable on the
// widget calendar iff its list is non-empty.
func (e *Engine) GroupByDay(slots []models.Slot, now time.Time) map[string][]models.Slot {
	days := make(map[string][]models.Slot)
	for _, s := range slots {
		if !e.IsBookable(&s, now) {
			continue
		}
		key := s.Date.UTC().Format("2006-01-02")
		days[key] = append(days[key], s)
	}
	return days
}
