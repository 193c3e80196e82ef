package models

import "time"

// Comment is a reader comment on a blog post. Comments start unapproved
// and become publicly visible only after admin approval.
type Comment struct {
	ID         string    `bson:"id" json:"id"`
	BlogID     string    `bson:"blogId" json:"blogId"`
	Name       string    `bson:"name" json:"name"`
	Content    string    `bson:"content" json:"content"`
	IsApproved bool      `bson:"isApproved" json:"isApproved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
