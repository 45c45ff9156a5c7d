package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUniqueNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"},
		UniqueNonEmpty([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{"a"},
		UniqueNonEmpty([]string{"", "a", "  ", "a"}))
	assert.Empty(t, UniqueNonEmpty(nil))
	assert.Empty(t, UniqueNonEmpty([]string{"", ""}))
}

func TestTaskCreateAliasShim(t *testing.T) {
	project := primitive.NewObjectID()
	now := time.Now()

	// projectId alone maps across.
	task := TaskCreate{
		Title:       "t",
		Description: "d",
		Priority:    "high",
		Status:      "pending",
		DueDate:     now,
		ProjectID:   project.Hex(),
	}.Document(now)
	require.NotNil(t, task.Project)
	assert.Equal(t, project, *task.Project)

	// The canonical field wins when both are present.
	canonical := primitive.NewObjectID()
	task = TaskCreate{
		Title:       "t",
		Description: "d",
		Priority:    "high",
		Status:      "pending",
		DueDate:     now,
		Project:     canonical.Hex(),
		ProjectID:   project.Hex(),
	}.Document(now)
	require.NotNil(t, task.Project)
	assert.Equal(t, canonical, *task.Project)
}

func TestTaskCreateDropsInvalidRefs(t *testing.T) {
	now := time.Now()
	task := TaskCreate{
		Title:       "t",
		Description: "d",
		Priority:    "low",
		Status:      "pending",
		DueDate:     now,
		Project:     "not-a-valid-id",
		Lesson:      "also-bad",
		Category:    "nope",
	}.Document(now)

	assert.Nil(t, task.Project)
	assert.Nil(t, task.Lesson)
	assert.Nil(t, task.Category)
}

func TestTaskCreateDedupesContacts(t *testing.T) {
	now := time.Now()
	task := TaskCreate{
		Title:       "t",
		Description: "d",
		Priority:    "low",
		Status:      "pending",
		DueDate:     now,
		Contacts:    []string{"c1", "c2", "c1", ""},
	}.Document(now)

	assert.Equal(t, []string{"c1", "c2"}, task.Contacts)
}

func TestTaskUpdateChanges(t *testing.T) {
	project := primitive.NewObjectID()
	title := "new title"
	clear := ""
	bad := "garbage"

	set, unset := TaskUpdate{
		Title:   &title,
		Project: ptr(project.Hex()),
		Lesson:  &clear,
	}.Changes()

	assert.Equal(t, "new title", set["title"])
	assert.Equal(t, project, set["project"])
	_, lessonSet := set["lesson"]
	assert.False(t, lessonSet)
	assert.Contains(t, unset, "lesson")

	// A malformed relation id is dropped, neither set nor unset.
	set, unset = TaskUpdate{Project: &bad}.Changes()
	assert.NotContains(t, set, "project")
	assert.NotContains(t, unset, "project")
}

func TestTaskUpdateOmitsAbsentFields(t *testing.T) {
	set, unset := TaskUpdate{}.Changes()
	assert.Empty(t, set)
	assert.Empty(t, unset)
}

func TestContactCreateDefaultsType(t *testing.T) {
	now := time.Now()
	contact := ContactCreate{FirstName: "Ada", LastName: "Lovelace"}.Document(now)
	assert.Equal(t, "personal", contact.Type)

	contact = ContactCreate{FirstName: "Ada", LastName: "Lovelace", Type: "work"}.Document(now)
	assert.Equal(t, "work", contact.Type)
}

func TestProjectCreateDocument(t *testing.T) {
	now := time.Now()
	progress := 30
	project := ProjectCreate{
		Name:        "p",
		Description: "d",
		Status:      "active",
		Priority:    "medium",
		StartDate:   now,
		Progress:    &progress,
	}.Document(now)

	assert.Equal(t, 30, project.Progress)
	assert.NotNil(t, project.Tasks)
	assert.Empty(t, project.Tasks)
	assert.NotNil(t, project.Tags)
}

func ptr[T any](v T) *T { return &v }
