package handlers

import (
	"context"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

const taskPageSize = 50

var taskSort = bson.D{{Key: "dueDate", Value: 1}}

// ListTasks supports status/priority/type/tag/project/lesson/category
// filters plus free-text q and a dueDate range. A category name (without
// categoryId) is resolved case-insensitively first; anything unresolvable
// matches nothing.
func (h *Handler) ListTasks(c *gin.Context) {
	v := c.Request.URL.Query()

	var category *primitive.ObjectID
	if name := v.Get("category"); name != "" && v.Get("categoryId") == "" {
		id, found, err := h.categoryByName(c, name)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch tasks", err)
			return
		}
		if !found {
			emptyResult(c, taskPageSize)
			return
		}
		category = &id
	}

	filter, ok := TaskFilter(v, category)
	if !ok {
		emptyResult(c, taskPageSize)
		return
	}
	listDocs[models.Task](h, c, "tasks", filter, taskSort, taskPageSize, "Tasks")
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, ok := fetchOne[models.Task](h, c, "tasks", id, "Task")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.populateCategory(task))
}

// CreateTask persists the task, then adds its id to the referenced project's
// and lesson's tasks arrays. The secondary writes run concurrently and are
// best-effort: the 201 stands even if one of them fails.
func (h *Handler) CreateTask(c *gin.Context) {
	var req models.TaskCreate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to create task", err)
		return
	}

	task := req.Document(time.Now().UTC())
	id, ok := insertDoc(h, c, "tasks", task, "Task")
	if !ok {
		return
	}
	task.ID = id

	var changes []refChange
	if task.Project != nil {
		changes = append(changes, refChange{"projects", "$addToSet", *task.Project})
	}
	if task.Lesson != nil {
		changes = append(changes, refChange{"lessons", "$addToSet", *task.Lesson})
	}
	h.applyRefChanges(task.ID, changes)

	c.JSON(http.StatusCreated, h.populateCategory(task))
}

// UpdateTask snapshots the task's project/lesson references, applies the
// update, then reconciles the parent arrays against what changed: pull from
// the old parent, add to the new one, each independently best-effort.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.TaskUpdate
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Failed to update task", err)
		return
	}

	before, ok := fetchOne[models.Task](h, c, "tasks", id, "Task")
	if !ok {
		return
	}

	set, unset := req.Changes()
	task, ok := updateOne[models.Task](h, c, "tasks", id, set, unset, "Task")
	if !ok {
		return
	}

	changes := refDiff("projects", before.Project, task.Project)
	changes = append(changes, refDiff("lessons", before.Lesson, task.Lesson)...)
	h.applyRefChanges(task.ID, changes)

	c.JSON(http.StatusOK, h.populateCategory(task))
}

// DeleteTask removes the task, then pulls its id from the referenced
// project/lesson arrays.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, ok := removeOne[models.Task](h, c, "tasks", id, "Task")
	if !ok {
		return
	}

	var changes []refChange
	if task.Project != nil {
		changes = append(changes, refChange{"projects", "$pull", *task.Project})
	}
	if task.Lesson != nil {
		changes = append(changes, refChange{"lessons", "$pull", *task.Lesson})
	}
	h.applyRefChanges(task.ID, changes)

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// refChange is one pending parent-array update: add or remove a task id on a
// projects/lessons document.
type refChange struct {
	col    string
	op     string // "$addToSet" or "$pull"
	parent primitive.ObjectID
}

// refDiff turns a changed parent reference into the pull/add pair. Equal
// references (including both unset) produce nothing.
func refDiff(col string, before, after *primitive.ObjectID) []refChange {
	if oidEqual(before, after) {
		return nil
	}
	var out []refChange
	if before != nil {
		out = append(out, refChange{col, "$pull", *before})
	}
	if after != nil {
		out = append(out, refChange{col, "$addToSet", *after})
	}
	return out
}

func oidEqual(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// applyRefChanges runs the secondary writes concurrently and waits for all
// of them. Failures are logged and swallowed: the primary write already
// succeeded and stays authoritative; the reconciler repairs any drift.
func (h *Handler) applyRefChanges(taskID primitive.ObjectID, changes []refChange) {
	if len(changes) == 0 {
		return
	}
	var wg sync.WaitGroup
	for _, ch := range changes {
		wg.Add(1)
		go func(ch refChange) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
			defer cancel()
			_, err := h.col(ch.col).UpdateByID(ctx, ch.parent, bson.M{ch.op: bson.M{"tasks": taskID}})
			if err != nil {
				h.Log.Warnw("relation sync failed",
					"collection", ch.col,
					"op", ch.op,
					"parent", ch.parent.Hex(),
					"task", taskID.Hex(),
					"error", err,
				)
			}
		}(ch)
	}
	wg.Wait()
}

// populateCategory resolves the category reference for single-task
// responses. When the reference is dangling or the lookup fails, the bare
// task goes out instead, keeping the raw id visible to the client.
func (h *Handler) populateCategory(task models.Task) any {
	if task.Category == nil {
		return task
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	var cat models.TaskCategory
	err := h.col("task_categories").FindOne(ctx, bson.M{"_id": *task.Category}).Decode(&cat)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Warnw("category populate failed", "task", task.ID.Hex(), "error", err)
		}
		return task
	}
	return models.PopulatedTask{Task: task, Category: &cat}
}

// categoryByName resolves a category name case-insensitively to its id.
func (h *Handler) categoryByName(c *gin.Context, name string) (primitive.ObjectID, bool, error) {
	ctx, cancel := dbContext(c)
	defer cancel()

	pattern := "^" + regexp.QuoteMeta(name) + "$"
	var cat models.TaskCategory
	err := h.col("task_categories").
		FindOne(ctx, bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}}).
		Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, false, nil
	}
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	return cat.ID, true, nil
}
