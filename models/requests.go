package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request bodies are bound strictly: unknown fields are rejected at the
// decode step and every mutable field is enumerated here, so nothing reaches
// a document that is not spelled out in one of these structs.
//
// Update types use pointers so that "absent" and "set to zero value" are
// distinguishable; Changes returns the $set and $unset documents for the
// fields that were actually supplied.

type AuthRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ContactCreate struct {
	FirstName   string       `json:"firstName" binding:"required"`
	LastName    string       `json:"lastName" binding:"required"`
	Email       string       `json:"email" binding:"omitempty,email"`
	Phone       string       `json:"phone"`
	Company     string       `json:"company"`
	Position    string       `json:"position"`
	Type        string       `json:"type" binding:"omitempty,oneof=personal work school client vendor"`
	Notes       string       `json:"notes"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

func (r ContactCreate) Document(now time.Time) Contact {
	typ := r.Type
	if typ == "" {
		typ = "personal"
	}
	return Contact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		Position:    r.Position,
		Type:        typ,
		Notes:       r.Notes,
		SocialLinks: r.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type ContactUpdate struct {
	FirstName   *string      `json:"firstName" binding:"omitempty,min=1"`
	LastName    *string      `json:"lastName" binding:"omitempty,min=1"`
	Email       *string      `json:"email" binding:"omitempty,email"`
	Phone       *string      `json:"phone"`
	Company     *string      `json:"company"`
	Position    *string      `json:"position"`
	Type        *string      `json:"type" binding:"omitempty,oneof=personal work school client vendor"`
	Notes       *string      `json:"notes"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

func (r ContactUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "firstName", r.FirstName)
	setString(set, "lastName", r.LastName)
	setString(set, "email", r.Email)
	setString(set, "phone", r.Phone)
	setString(set, "company", r.Company)
	setString(set, "position", r.Position)
	setString(set, "type", r.Type)
	setString(set, "notes", r.Notes)
	if r.SocialLinks != nil {
		set["socialLinks"] = r.SocialLinks
	}
	return set, unset
}

type TaskCreate struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	Priority       string    `json:"priority" binding:"required,oneof=low medium high urgent"`
	Status         string    `json:"status" binding:"required,oneof=pending in-progress completed cancelled"`
	Type           string    `json:"type"`
	DueDate        time.Time `json:"dueDate" binding:"required"`
	Project        string    `json:"project"`
	ProjectID      string    `json:"projectId"` // legacy alias for project
	Lesson         string    `json:"lesson"`
	LessonID       string    `json:"lessonId"` // legacy alias for lesson
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	EstimatedHours *float64  `json:"estimatedHours" binding:"omitempty,gte=0"`
	ActualHours    *float64  `json:"actualHours" binding:"omitempty,gte=0"`
	Contacts       []string  `json:"contacts"`
}

// Document folds the legacy projectId/lessonId aliases into the canonical
// fields, drops relation ids that do not parse, and dedupes contacts.
func (r TaskCreate) Document(now time.Time) Task {
	project := r.Project
	if project == "" {
		project = r.ProjectID
	}
	lesson := r.Lesson
	if lesson == "" {
		lesson = r.LessonID
	}
	return Task{
		Title:          r.Title,
		Description:    r.Description,
		Priority:       r.Priority,
		Status:         r.Status,
		Type:           r.Type,
		DueDate:        r.DueDate,
		Project:        parseRef(project),
		Lesson:         parseRef(lesson),
		Category:       parseRef(r.Category),
		Tags:           orEmpty(r.Tags),
		EstimatedHours: r.EstimatedHours,
		ActualHours:    r.ActualHours,
		Contacts:       UniqueNonEmpty(r.Contacts),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type TaskUpdate struct {
	Title          *string    `json:"title" binding:"omitempty,min=1"`
	Description    *string    `json:"description" binding:"omitempty,min=1"`
	Priority       *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status         *string    `json:"status" binding:"omitempty,oneof=pending in-progress completed cancelled"`
	Type           *string    `json:"type"`
	DueDate        *time.Time `json:"dueDate"`
	Project        *string    `json:"project"`
	Lesson         *string    `json:"lesson"`
	Category       *string    `json:"category"`
	Tags           []string   `json:"tags"`
	EstimatedHours *float64   `json:"estimatedHours" binding:"omitempty,gte=0"`
	ActualHours    *float64   `json:"actualHours" binding:"omitempty,gte=0"`
	Contacts       []string   `json:"contacts"`
}

// Changes maps the supplied fields onto $set/$unset documents. An empty
// string on a relation field clears it; a malformed id is dropped rather
// than written.
func (r TaskUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "title", r.Title)
	setString(set, "description", r.Description)
	setString(set, "priority", r.Priority)
	setString(set, "status", r.Status)
	setString(set, "type", r.Type)
	if r.DueDate != nil {
		set["dueDate"] = *r.DueDate
	}
	setRef(set, unset, "project", r.Project)
	setRef(set, unset, "lesson", r.Lesson)
	setRef(set, unset, "category", r.Category)
	if r.Tags != nil {
		set["tags"] = r.Tags
	}
	if r.EstimatedHours != nil {
		set["estimatedHours"] = *r.EstimatedHours
	}
	if r.ActualHours != nil {
		set["actualHours"] = *r.ActualHours
	}
	if r.Contacts != nil {
		set["contacts"] = UniqueNonEmpty(r.Contacts)
	}
	return set, unset
}

type ProjectCreate struct {
	Name          string     `json:"name" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	Status        string     `json:"status" binding:"required,oneof=planning active on-hold completed cancelled"`
	Priority      string     `json:"priority" binding:"required,oneof=low medium high urgent"`
	StartDate     time.Time  `json:"startDate" binding:"required"`
	EndDate       *time.Time `json:"endDate"`
	Progress      *int       `json:"progress" binding:"required,gte=0,lte=100"`
	Collaborators []string   `json:"collaborators"`
	Tags          []string   `json:"tags"`
	GithubLink    string     `json:"githubLink"`
	FigmaLink     string     `json:"figmaLink"`
	MailingList   string     `json:"mailingList"`
}

func (r ProjectCreate) Document(now time.Time) Project {
	return Project{
		Name:          r.Name,
		Description:   r.Description,
		Status:        r.Status,
		Priority:      r.Priority,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Progress:      *r.Progress,
		Tasks:         []primitive.ObjectID{},
		Collaborators: orEmpty(r.Collaborators),
		Tags:          orEmpty(r.Tags),
		GithubLink:    r.GithubLink,
		FigmaLink:     r.FigmaLink,
		MailingList:   r.MailingList,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type ProjectUpdate struct {
	Name          *string    `json:"name" binding:"omitempty,min=1"`
	Description   *string    `json:"description" binding:"omitempty,min=1"`
	Status        *string    `json:"status" binding:"omitempty,oneof=planning active on-hold completed cancelled"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Progress      *int       `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Collaborators []string   `json:"collaborators"`
	Tags          []string   `json:"tags"`
	GithubLink    *string    `json:"githubLink"`
	FigmaLink     *string    `json:"figmaLink"`
	MailingList   *string    `json:"mailingList"`
}

func (r ProjectUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "name", r.Name)
	setString(set, "description", r.Description)
	setString(set, "status", r.Status)
	setString(set, "priority", r.Priority)
	if r.StartDate != nil {
		set["startDate"] = *r.StartDate
	}
	if r.EndDate != nil {
		set["endDate"] = *r.EndDate
	}
	if r.Progress != nil {
		set["progress"] = *r.Progress
	}
	if r.Collaborators != nil {
		set["collaborators"] = r.Collaborators
	}
	if r.Tags != nil {
		set["tags"] = r.Tags
	}
	setString(set, "githubLink", r.GithubLink)
	setString(set, "figmaLink", r.FigmaLink)
	setString(set, "mailingList", r.MailingList)
	return set, unset
}

type LessonCreate struct {
	Title       string    `json:"title" binding:"required"`
	Subject     string    `json:"subject" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=lecture seminar lab tutorial exam"`
	Date        time.Time `json:"date" binding:"required"`
	Duration    *int      `json:"duration" binding:"required,gt=0"`
	Location    string    `json:"location"`
	Instructor  string    `json:"instructor"`
	Description string    `json:"description"`
	Materials   []string  `json:"materials"`
	Completed   bool      `json:"completed"`
}

func (r LessonCreate) Document(now time.Time) Lesson {
	return Lesson{
		Title:       r.Title,
		Subject:     r.Subject,
		Type:        r.Type,
		Date:        r.Date,
		Duration:    *r.Duration,
		Location:    r.Location,
		Instructor:  r.Instructor,
		Description: r.Description,
		Materials:   orEmpty(r.Materials),
		Completed:   r.Completed,
		Tasks:       []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type LessonUpdate struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Subject     *string    `json:"subject" binding:"omitempty,min=1"`
	Type        *string    `json:"type" binding:"omitempty,oneof=lecture seminar lab tutorial exam"`
	Date        *time.Time `json:"date"`
	Duration    *int       `json:"duration" binding:"omitempty,gt=0"`
	Location    *string    `json:"location"`
	Instructor  *string    `json:"instructor"`
	Description *string    `json:"description"`
	Materials   []string   `json:"materials"`
	Completed   *bool      `json:"completed"`
}

func (r LessonUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "title", r.Title)
	setString(set, "subject", r.Subject)
	setString(set, "type", r.Type)
	if r.Date != nil {
		set["date"] = *r.Date
	}
	if r.Duration != nil {
		set["duration"] = *r.Duration
	}
	setString(set, "location", r.Location)
	setString(set, "instructor", r.Instructor)
	setString(set, "description", r.Description)
	if r.Materials != nil {
		set["materials"] = r.Materials
	}
	if r.Completed != nil {
		set["completed"] = *r.Completed
	}
	return set, unset
}

type TestCreate struct {
	Title          string    `json:"title" binding:"required"`
	Subject        string    `json:"subject" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=quiz midterm final assignment project"`
	Date           time.Time `json:"date" binding:"required"`
	Duration       *int      `json:"duration" binding:"omitempty,gt=0"`
	Location       string    `json:"location"`
	TotalMarks     *float64  `json:"totalMarks" binding:"omitempty,gte=0"`
	AchievedMarks  *float64  `json:"achievedMarks" binding:"omitempty,gte=0"`
	Grade          string    `json:"grade"`
	StudyMaterials []string  `json:"studyMaterials"`
	Notes          string    `json:"notes"`
}

func (r TestCreate) Document(now time.Time) Test {
	return Test{
		Title:          r.Title,
		Subject:        r.Subject,
		Type:           r.Type,
		Date:           r.Date,
		Duration:       r.Duration,
		Location:       r.Location,
		TotalMarks:     r.TotalMarks,
		AchievedMarks:  r.AchievedMarks,
		Grade:          r.Grade,
		StudyMaterials: orEmpty(r.StudyMaterials),
		Notes:          r.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type TestUpdate struct {
	Title          *string    `json:"title" binding:"omitempty,min=1"`
	Subject        *string    `json:"subject" binding:"omitempty,min=1"`
	Type           *string    `json:"type" binding:"omitempty,oneof=quiz midterm final assignment project"`
	Date           *time.Time `json:"date"`
	Duration       *int       `json:"duration" binding:"omitempty,gt=0"`
	Location       *string    `json:"location"`
	TotalMarks     *float64   `json:"totalMarks" binding:"omitempty,gte=0"`
	AchievedMarks  *float64   `json:"achievedMarks" binding:"omitempty,gte=0"`
	Grade          *string    `json:"grade"`
	StudyMaterials []string   `json:"studyMaterials"`
	Notes          *string    `json:"notes"`
}

func (r TestUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "title", r.Title)
	setString(set, "subject", r.Subject)
	setString(set, "type", r.Type)
	if r.Date != nil {
		set["date"] = *r.Date
	}
	if r.Duration != nil {
		set["duration"] = *r.Duration
	}
	setString(set, "location", r.Location)
	if r.TotalMarks != nil {
		set["totalMarks"] = *r.TotalMarks
	}
	if r.AchievedMarks != nil {
		set["achievedMarks"] = *r.AchievedMarks
	}
	setString(set, "grade", r.Grade)
	if r.StudyMaterials != nil {
		set["studyMaterials"] = r.StudyMaterials
	}
	setString(set, "notes", r.Notes)
	return set, unset
}

type RecurrenceInput struct {
	Frequency string     `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval  int        `json:"interval" binding:"required,gte=1"`
	EndDate   *time.Time `json:"endDate"`
	Count     *int       `json:"count" binding:"omitempty,gte=1"`
}

func (r *RecurrenceInput) model() *Recurrence {
	if r == nil {
		return nil
	}
	return &Recurrence{
		Frequency: r.Frequency,
		Interval:  r.Interval,
		EndDate:   r.EndDate,
		Count:     r.Count,
	}
}

type EventCreate struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	StartDate   time.Time        `json:"startDate" binding:"required"`
	EndDate     time.Time        `json:"endDate" binding:"required"`
	IsAllDay    bool             `json:"isAllDay"`
	Type        string           `json:"type" binding:"required,oneof=meeting deadline appointment reminder personal"`
	Location    string           `json:"location"`
	Attendees   []string         `json:"attendees"`
	Reminders   []int            `json:"reminders"`
	Recurrence  *RecurrenceInput `json:"recurrence"`
}

func (r EventCreate) Document(now time.Time) CalendarEvent {
	return CalendarEvent{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsAllDay:    r.IsAllDay,
		Type:        r.Type,
		Location:    r.Location,
		Attendees:   orEmpty(r.Attendees),
		Reminders:   orEmptyInts(r.Reminders),
		Recurrence:  r.Recurrence.model(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type EventUpdate struct {
	Title       *string          `json:"title" binding:"omitempty,min=1"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	IsAllDay    *bool            `json:"isAllDay"`
	Type        *string          `json:"type" binding:"omitempty,oneof=meeting deadline appointment reminder personal"`
	Location    *string          `json:"location"`
	Attendees   []string         `json:"attendees"`
	Reminders   []int            `json:"reminders"`
	Recurrence  *RecurrenceInput `json:"recurrence"`
}

func (r EventUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "title", r.Title)
	setString(set, "description", r.Description)
	if r.StartDate != nil {
		set["startDate"] = *r.StartDate
	}
	if r.EndDate != nil {
		set["endDate"] = *r.EndDate
	}
	if r.IsAllDay != nil {
		set["isAllDay"] = *r.IsAllDay
	}
	setString(set, "type", r.Type)
	setString(set, "location", r.Location)
	if r.Attendees != nil {
		set["attendees"] = r.Attendees
	}
	if r.Reminders != nil {
		set["reminders"] = r.Reminders
	}
	if r.Recurrence != nil {
		set["recurrence"] = r.Recurrence.model()
	}
	return set, unset
}

type NotificationCreate struct {
	Title      string `json:"title" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=info warning error success"`
	Read       bool   `json:"read"`
	EntityType string `json:"entityType" binding:"omitempty,oneof=task project event lesson test"`
	EntityID   string `json:"entityId"`
}

func (r NotificationCreate) Document(now time.Time) Notification {
	return Notification{
		Title:      r.Title,
		Message:    r.Message,
		Type:       r.Type,
		Read:       r.Read,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type NotificationUpdate struct {
	Title      *string `json:"title" binding:"omitempty,min=1"`
	Message    *string `json:"message" binding:"omitempty,min=1"`
	Type       *string `json:"type" binding:"omitempty,oneof=info warning error success"`
	Read       *bool   `json:"read"`
	EntityType *string `json:"entityType" binding:"omitempty,oneof=task project event lesson test"`
	EntityID   *string `json:"entityId"`
}

func (r NotificationUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "title", r.Title)
	setString(set, "message", r.Message)
	setString(set, "type", r.Type)
	if r.Read != nil {
		set["read"] = *r.Read
	}
	setString(set, "entityType", r.EntityType)
	setString(set, "entityId", r.EntityID)
	return set, unset
}

type CategoryCreate struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (r CategoryCreate) Document(now time.Time) TaskCategory {
	return TaskCategory{
		Name:        r.Name,
		Color:       r.Color,
		Description: r.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type CategoryUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}

func (r CategoryUpdate) Changes() (bson.M, bson.M) {
	set, unset := bson.M{}, bson.M{}
	setString(set, "name", r.Name)
	setString(set, "color", r.Color)
	setString(set, "description", r.Description)
	return set, unset
}

// UniqueNonEmpty keeps the first occurrence of every non-empty trimmed value.
func UniqueNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func parseRef(id string) *primitive.ObjectID {
	if id == "" {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return &oid
}

// setRef writes a relation change: empty string clears the field, a valid
// hex id sets it, anything else is dropped.
func setRef(set, unset bson.M, field string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		unset[field] = ""
		return
	}
	if oid := parseRef(*value); oid != nil {
		set[field] = *oid
	}
}

func setString(set bson.M, field string, value *string) {
	if value != nil {
		set[field] = *value
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
