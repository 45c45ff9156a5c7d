package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const projectPageSize = 40

var projectSort = bson.D{{Key: "updatedAt", Value: -1}}

func (h *Handler) ListProjects(c *gin.Context) {
	listDocs[models.Project](h, c, "projects", ProjectFilter(c.Request.URL.Query()), projectSort, projectPageSize, "Projects")
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, ok := fetchOne[models.Project](h, c, "projects", id, "Project")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req models.ProjectCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create project", err)
		return
	}
	project := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "projects", project, "Project")
	if !ok {
		return
	}
	project.ID = id
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ProjectUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update project", err)
		return
	}
	set, unset := req.Changes()
	project, ok := updateOne[models.Project](h, c, "projects", id, set, unset, "Project")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes the project and bulk-clears the project field on
// every task that referenced it.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := removeOne[models.Project](h, c, "projects", id, "Project"); !ok {
		return
	}
	h.unsetTaskField("project", id)
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
