package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Lesson struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Subject     string               `bson:"subject" json:"subject"`
	Type        string               `bson:"type" json:"type"`
	Date        time.Time            `bson:"date" json:"date"`
	Duration    int                  `bson:"duration" json:"duration"` // minutes
	Location    string               `bson:"location,omitempty" json:"location,omitempty"`
	Instructor  string               `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Materials   []string             `bson:"materials" json:"materials"`
	Completed   bool                 `bson:"completed" json:"completed"`
	Tasks       []primitive.ObjectID `bson:"tasks" json:"tasks"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}
