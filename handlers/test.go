package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const testPageSize = 100

var testSort = bson.D{{Key: "date", Value: -1}}

func (h *Handler) ListTests(c *gin.Context) {
	listDocs[models.Test](h, c, "tests", TestFilter(c.Request.URL.Query()), testSort, testPageSize, "Tests")
}

func (h *Handler) GetTest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	test, ok := fetchOne[models.Test](h, c, "tests", id, "Test")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *Handler) CreateTest(c *gin.Context) {
	var req models.TestCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create test", err)
		return
	}
	test := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "tests", test, "Test")
	if !ok {
		return
	}
	test.ID = id
	c.JSON(http.StatusCreated, test)
}

func (h *Handler) UpdateTest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.TestUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update test", err)
		return
	}
	set, unset := req.Changes()
	test, ok := updateOne[models.Test](h, c, "tests", id, set, unset, "Test")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *Handler) DeleteTest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.Test](h, c, "tests", id, "Test"); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test deleted"})
}
