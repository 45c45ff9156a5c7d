package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const notificationPageSize = 50

var notificationSort = bson.D{{Key: "createdAt", Value: -1}}

func (h *Handler) ListNotifications(c *gin.Context) {
	listDocs[models.Notification](h, c, "notifications", NotificationFilter(c.Request.URL.Query()), notificationSort, notificationPageSize, "Notifications")
}

func (h *Handler) GetNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notification, ok := fetchOne[models.Notification](h, c, "notifications", id, "Notification")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *Handler) CreateNotification(c *gin.Context) {
	var req models.NotificationCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create notification", err)
		return
	}
	notification := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "notifications", notification, "Notification")
	if !ok {
		return
	}
	notification.ID = id
	c.JSON(http.StatusCreated, notification)
}

func (h *Handler) UpdateNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.NotificationUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update notification", err)
		return
	}
	set, unset := req.Changes()
	notification, ok := updateOne[models.Notification](h, c, "notifications", id, set, unset, "Notification")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, notification)
}

// MarkNotificationRead forces read = true regardless of body.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notification, ok := updateOne[models.Notification](h, c, "notifications", id, bson.M{"read": true}, nil, "Notification")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.Notification](h, c, "notifications", id, "Notification"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
