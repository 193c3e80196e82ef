package models

import "time"

// Slot represents one bookable appointment window. Date carries the
// calendar day; StartTime/EndTime are "HH:MM" wall-clock strings that
// are combined with Date in the canonical zone to produce instants.
type Slot struct {
	ID                  string    `bson:"id" json:"id"`
	Title               string    `bson:"title" json:"title"`
	Date                time.Time `bson:"date" json:"date"`
	StartTime           string    `bson:"startTime" json:"startTime"`
	EndTime             string    `bson:"endTime" json:"endTime"`
	MaxParticipants     int       `bson:"maxParticipants" json:"maxParticipants"`
	CurrentParticipants int       `bson:"currentParticipants" json:"currentParticipants"`
	Description         string    `bson:"description" json:"description"`
	IsActive            bool      `bson:"isActive" json:"isActive"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SlotPatch is a partial update of a slot. Nil fields are left untouched.
type SlotPatch struct {
	Title               *string    `json:"title"`
	Date                *time.Time `json:"date"`
	StartTime           *string    `json:"startTime"`
	EndTime             *string    `json:"endTime"`
	MaxParticipants     *int       `json:"maxParticipants"`
	CurrentParticipants *int       `json:"currentParticipants"`
	Description         *string    `json:"description"`
	IsActive            *bool      `json:"isActive"`
}
