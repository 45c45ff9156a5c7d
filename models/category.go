package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskCategory names are unique; the collection carries a unique index on
// name, created at startup.
type TaskCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
