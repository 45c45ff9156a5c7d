package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recurrence describes how a calendar event repeats. Either EndDate or Count
// bounds the series; both absent means it repeats indefinitely.
type Recurrence struct {
	Frequency string     `bson:"frequency" json:"frequency"`
	Interval  int        `bson:"interval" json:"interval"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Count     *int       `bson:"count,omitempty" json:"count,omitempty"`
}

type CalendarEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
	IsAllDay    bool               `bson:"isAllDay" json:"isAllDay"`
	Type        string             `bson:"type" json:"type"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Attendees   []string           `bson:"attendees" json:"attendees"` // contact ids
	Reminders   []int              `bson:"reminders" json:"reminders"` // minutes before start
	Recurrence  *Recurrence        `bson:"recurrence,omitempty" json:"recurrence,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
