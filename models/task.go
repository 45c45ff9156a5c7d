package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a unit of work, optionally attached to a project, a lesson and a
// category. The parent side keeps a denormalized array of task ids that the
// task handlers maintain on every write.
type Task struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title          string              `bson:"title" json:"title"`
	Description    string              `bson:"description" json:"description"`
	Priority       string              `bson:"priority" json:"priority"`
	Status         string              `bson:"status" json:"status"`
	Type           string              `bson:"type,omitempty" json:"type,omitempty"`
	DueDate        time.Time           `bson:"dueDate" json:"dueDate"`
	Project        *primitive.ObjectID `bson:"project,omitempty" json:"project,omitempty"`
	Lesson         *primitive.ObjectID `bson:"lesson,omitempty" json:"lesson,omitempty"`
	Category       *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Tags           []string            `bson:"tags" json:"tags"`
	EstimatedHours *float64            `bson:"estimatedHours,omitempty" json:"estimatedHours,omitempty"`
	ActualHours    *float64            `bson:"actualHours,omitempty" json:"actualHours,omitempty"`
	Contacts       []string            `bson:"contacts" json:"contacts"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
