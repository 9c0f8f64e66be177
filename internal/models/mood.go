package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood represents one user-submitted mood entry. Entries are immutable once
// created; there is no update or delete path.
type Mood struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	// Owner (from the authenticated session, never from the request body)
	UserID string `bson:"user_id" json:"user_id"`

	// Mood label (free text, e.g. "happy", "tired")
	Mood string `bson:"mood" json:"mood"`

	// Intensity on a 1-5 scale
	Intensity int `bson:"intensity" json:"intensity"`

	// Optional note
	Note string `bson:"note,omitempty" json:"note,omitempty"`
}
