package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Description   string               `bson:"description" json:"description"`
	Status        string               `bson:"status" json:"status"`
	Priority      string               `bson:"priority" json:"priority"`
	StartDate     time.Time            `bson:"startDate" json:"startDate"`
	EndDate       *time.Time           `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Progress      int                  `bson:"progress" json:"progress"`
	Tasks         []primitive.ObjectID `bson:"tasks" json:"tasks"`
	Collaborators []string             `bson:"collaborators" json:"collaborators"`
	Tags          []string             `bson:"tags" json:"tags"`
	GithubLink    string               `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	FigmaLink     string               `bson:"figmaLink,omitempty" json:"figmaLink,omitempty"`
	MailingList   string               `bson:"mailingList,omitempty" json:"mailingList,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}
