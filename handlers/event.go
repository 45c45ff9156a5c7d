package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const eventPageSize = 100

var eventSort = bson.D{{Key: "startDate", Value: 1}}

func (h *Handler) ListEvents(c *gin.Context) {
	listDocs[models.CalendarEvent](h, c, "calendar_events", EventFilter(c.Request.URL.Query()), eventSort, eventPageSize, "Events")
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, ok := fetchOne[models.CalendarEvent](h, c, "calendar_events", id, "Event")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req models.EventCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create event", err)
		return
	}
	event := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "calendar_events", event, "Event")
	if !ok {
		return
	}
	event.ID = id
	c.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.EventUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update event", err)
		return
	}
	set, unset := req.Changes()
	event, ok := updateOne[models.CalendarEvent](h, c, "calendar_events", id, set, unset, "Event")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.CalendarEvent](h, c, "calendar_events", id, "Event"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
