package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	Type       string             `bson:"type" json:"type"`
	Read       bool               `bson:"read" json:"read"`
	EntityType string             `bson:"entityType,omitempty" json:"entityType,omitempty"`
	EntityID   string             `bson:"entityId,omitempty" json:"entityId,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
