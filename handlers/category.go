package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const categoryPageSize = 100

var categorySort = bson.D{{Key: "name", Value: 1}}

func (h *Handler) ListCategories(c *gin.Context) {
	listDocs[models.TaskCategory](h, c, "task_categories", CategoryFilter(c.Request.URL.Query()), categorySort, categoryPageSize, "Categories")
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, ok := fetchOne[models.TaskCategory](h, c, "task_categories", id, "Category")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req models.CategoryCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create category", err)
		return
	}
	category := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "task_categories", category, "Category")
	if !ok {
		return
	}
	category.ID = id
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.CategoryUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update category", err)
		return
	}
	set, unset := req.Changes()
	category, ok := updateOne[models.TaskCategory](h, c, "task_categories", id, set, unset, "Category")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes the category and clears it from every task that
// referenced it. The delete succeeds regardless of how many tasks point
// here.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.TaskCategory](h, c, "task_categories", id, "Category"); !ok {
		return
	}
	h.unsetTaskField("category", id)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
