package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const contactPageSize = 40

var contactSort = bson.D{{Key: "updatedAt", Value: -1}}

func (h *Handler) ListContacts(c *gin.Context) {
	listDocs[models.Contact](h, c, "contacts", ContactFilter(c.Request.URL.Query()), contactSort, contactPageSize, "Contacts")
}

func (h *Handler) GetContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	contact, ok := fetchOne[models.Contact](h, c, "contacts", id, "Contact")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req models.ContactCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create contact", err)
		return
	}
	contact := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "contacts", contact, "Contact")
	if !ok {
		return
	}
	contact.ID = id
	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ContactUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update contact", err)
		return
	}
	set, unset := req.Changes()
	contact, ok := updateOne[models.Contact](h, c, "contacts", id, set, unset, "Contact")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.Contact](h, c, "contacts", id, "Contact"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
