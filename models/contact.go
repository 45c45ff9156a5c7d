package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialLinks struct {
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
}

type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Position    string             `bson:"position,omitempty" json:"position,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	SocialLinks *SocialLinks       `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
