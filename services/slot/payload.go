// File: services/slot/payload.go
package slot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"consultify/models"
)

// The slot-creation endpoint accepts four body shapes, kept for
// compatibility with the deployed admin UI:
//
//  1. a bare array of flat slots
//  2. {"slots": [...]}
//  3. {"date": ..., "timeSlots": [...]} — date exploded onto each entry
//  4. a single flat slot object
//
// They are parsed here, at the boundary, into one canonical []SlotInput;
// anything that matches none of them is rejected.

// ErrBadShape reports a creation body matching none of the accepted shapes.
var ErrBadShape = fmt.Errorf("request body matches no accepted slot shape")

// FlexDate accepts either a bare "2006-01-02" date or a full RFC 3339
// timestamp. Either way the stored value is the calendar day as UTC
// midnight; the canonical zone only enters when the day is combined
// with an HH:MM wall-clock time.
type FlexDate struct {
	time.Time
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	y, m, day := t.Date()
	d.Time = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// SlotInput is the canonical creation form of one slot.
type SlotInput struct {
	Title               string   `json:"title"`
	Date                FlexDate `json:"date"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	MaxParticipants     int      `json:"maxParticipants"`
	CurrentParticipants int      `json:"currentParticipants"`
	Description         string   `json:"description"`
	IsActive            *bool    `json:"isActive"`
}

// Validate checks the invariants a stored slot must satisfy.
func (in *SlotInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	start, err := time.Parse("15:04", in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrValidation)
	}
	end, err := time.Parse("15:04", in.EndTime)
	if err != nil {
		return fmt.Errorf("%w: endTime must be HH:MM", ErrValidation)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: startTime must precede endTime", ErrValidation)
	}
	if in.MaxParticipants < 1 {
		return fmt.Errorf("%w: maxParticipants must be at least 1", ErrValidation)
	}
	if in.CurrentParticipants < 0 {
		return fmt.Errorf("%w: currentParticipants cannot be negative", ErrValidation)
	}
	return nil
}

// ToModel converts the input to a Slot. IsActive defaults to true when
// omitted.
func (in *SlotInput) ToModel() models.Slot {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return models.Slot{
		Title:               strings.TrimSpace(in.Title),
		Date:                in.Date.Time,
		StartTime:           in.StartTime,
		EndTime:             in.EndTime,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: in.CurrentParticipants,
		Description:         in.Description,
		IsActive:            active,
	}
}

// ParseCreatePayload parses a creation body into canonical slot inputs.
func ParseCreatePayload(body []byte) ([]SlotInput, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrBadShape
	}

	// Shape 1: bare array.
	if trimmed[0] == '[' {
		var slots []SlotInput
		if err := json.Unmarshal(trimmed, &slots); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
		}
		if len(slots) == 0 {
			return nil, fmt.Errorf("%w: provide at least one slot", ErrValidation)
		}
		return slots, nil
	}

	var envelope struct {
		Slots     []SlotInput `json:"slots"`
		Date      *FlexDate   `json:"date"`
		TimeSlots []SlotInput `json:"timeSlots"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}

	// Shape 2: {"slots": [...]}.
	if envelope.Slots != nil {
		if len(envelope.Slots) == 0 {
			return nil, fmt.Errorf("%w: provide at least one slot", ErrValidation)
		}
		return envelope.Slots, nil
	}

	// Shape 3: {"date", "timeSlots"} exploded to flat entries.
	if envelope.Date != nil && envelope.TimeSlots != nil {
		if len(envelope.TimeSlots) == 0 {
			return nil, fmt.Errorf("%w: provide at least one slot", ErrValidation)
		}
		slots := make([]SlotInput, len(envelope.TimeSlots))
		for i, s := range envelope.TimeSlots {
			s.Date = *envelope.Date
			slots[i] = s
		}
		return slots, nil
	}

	// Shape 4: single flat slot.
	var single SlotInput
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if single.Title == "" {
		return nil, ErrBadShape
	}
	return []SlotInput{single}, nil
}
