package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const lessonPageSize = 100

var lessonSort = bson.D{{Key: "date", Value: -1}}

func (h *Handler) ListLessons(c *gin.Context) {
	listDocs[models.Lesson](h, c, "lessons", LessonFilter(c.Request.URL.Query()), lessonSort, lessonPageSize, "Lessons")
}

func (h *Handler) GetLesson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lesson, ok := fetchOne[models.Lesson](h, c, "lessons", id, "Lesson")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *Handler) CreateLesson(c *gin.Context) {
	var req models.LessonCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create lesson", err)
		return
	}
	lesson := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "lessons", lesson, "Lesson")
	if !ok {
		return
	}
	lesson.ID = id
	c.JSON(http.StatusCreated, lesson)
}

func (h *Handler) UpdateLesson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.LessonUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update lesson", err)
		return
	}
	set, unset := req.Changes()
	lesson, ok := updateOne[models.Lesson](h, c, "lessons", id, set, unset, "Lesson")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// DeleteLesson removes the lesson and bulk-clears the lesson field on every
// task that referenced it.
func (h *Handler) DeleteLesson(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.Lesson](h, c, "lessons", id, "Lesson"); !ok {
		return
	}
	h.unsetTaskField("lesson", id)
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}
