package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Test struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Subject        string             `bson:"subject" json:"subject"`
	Type           string             `bson:"type" json:"type"`
	Date           time.Time          `bson:"date" json:"date"`
	Duration       *int               `bson:"duration,omitempty" json:"duration,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	TotalMarks     *float64           `bson:"totalMarks,omitempty" json:"totalMarks,omitempty"`
	AchievedMarks  *float64           `bson:"achievedMarks,omitempty" json:"achievedMarks,omitempty"`
	Grade          string             `bson:"grade,omitempty" json:"grade,omitempty"`
	StudyMaterials []string           `bson:"studyMaterials" json:"studyMaterials"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
