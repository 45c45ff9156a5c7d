package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/utils"
)

const (
	maxUploadSize  = 25 << 20 // 25 MiB per file
	maxUploadFiles = 10
)

// fileScope binds the lesson/test file routes to their collection and the
// materials array that mirrors the stored files.
type fileScope struct {
	kind  string // path segment under uploads/school
	col   string
	field string // materials array field on the document
	param string // route parameter carrying the entity id
	name  string
}

var (
	lessonFiles = fileScope{kind: "lessons", col: "lessons", field: "materials", param: "lessonId", name: "Lesson"}
	testFiles   = fileScope{kind: "tests", col: "tests", field: "studyMaterials", param: "testId", name: "Test"}
)

func (h *Handler) ListLessonFiles(c *gin.Context)   { h.listFiles(c, lessonFiles) }
func (h *Handler) UploadLessonFiles(c *gin.Context) { h.uploadFiles(c, lessonFiles) }
func (h *Handler) DeleteLessonFile(c *gin.Context)  { h.deleteFile(c, lessonFiles) }

func (h *Handler) ListTestFiles(c *gin.Context)   { h.listFiles(c, testFiles) }
func (h *Handler) UploadTestFiles(c *gin.Context) { h.uploadFiles(c, testFiles) }
func (h *Handler) DeleteTestFile(c *gin.Context)  { h.deleteFile(c, testFiles) }

func (h *Handler) scopeDir(scope fileScope, id primitive.ObjectID) string {
	return filepath.Join(h.UploadDir, "school", scope.kind, id.Hex())
}

func publicURL(scope fileScope, id primitive.ObjectID, name string) string {
	return path.Join("/uploads", "school", scope.kind, id.Hex(), name)
}

// listFiles returns the stored PDFs for one entity. A missing directory
// means no uploads yet, not an error.
func (h *Handler) listFiles(c *gin.Context, scope fileScope) {
	id, ok := pathID(c, scope.param)
	if !ok {
		return
	}

	dir := h.scopeDir(scope, id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"items": []models.FileInfo{}})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to list files", err)
		return
	}

	items := make([]models.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		items = append(items, models.FileInfo{Name: e.Name(), URL: publicURL(scope, id, e.Name())})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// uploadFiles accepts up to ten PDFs, stores them under the entity's
// directory with timestamped sanitized names, and set-adds the public URLs
// to the entity's materials array.
func (h *Handler) uploadFiles(c *gin.Context, scope fileScope) {
	id, ok := pathID(c, scope.param)
	if !ok {
		return
	}
	if !h.entityExists(c, scope, id) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to upload files", err)
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "No files uploaded", nil)
		return
	}
	if len(files) > maxUploadFiles {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Too many files, maximum is %d", maxUploadFiles), nil)
		return
	}

	// Validate everything before writing anything.
	for _, f := range files {
		if !utils.IsPDF(f.Header.Get("Content-Type"), f.Filename) {
			respondError(c, http.StatusBadRequest, "Only PDF files are allowed", nil)
			return
		}
		if f.Size > maxUploadSize {
			respondError(c, http.StatusBadRequest, "File too large, maximum is 25MB", nil)
			return
		}
	}

	dir := h.scopeDir(scope, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to upload files", err)
		return
	}

	uploaded := make([]string, 0, len(files))
	for _, f := range files {
		stored := utils.StoredFilename(time.Now().UnixMilli(), f.Filename)
		if err := c.SaveUploadedFile(f, filepath.Join(dir, stored)); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to upload files", err)
			return
		}
		uploaded = append(uploaded, publicURL(scope, id, stored))
	}

	ctx, cancel := dbContext(c)
	defer cancel()
	_, err = h.col(scope.col).UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{scope.field: bson.M{"$each": uploaded}},
	})
	if err != nil {
		h.Log.Warnw("materials sync failed", "collection", scope.col, "id", id.Hex(), "error", err)
	}

	c.JSON(http.StatusCreated, gin.H{"uploaded": uploaded})
}

// deleteFile unlinks one stored file after the containment check and pulls
// its URL from the materials array.
func (h *Handler) deleteFile(c *gin.Context, scope fileScope) {
	id, ok := pathID(c, scope.param)
	if !ok {
		return
	}

	fileName := c.Param("fileName")
	dir := h.scopeDir(scope, id)
	target := filepath.Join(dir, fileName)
	if !utils.WithinDir(dir, target) {
		respondError(c, http.StatusBadRequest, "Invalid file path", nil)
		return
	}

	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			respondError(c, http.StatusNotFound, "File not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete file", err)
		return
	}
	if err := os.Remove(target); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete file", err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()
	url := publicURL(scope, id, filepath.Base(target))
	_, err := h.col(scope.col).UpdateByID(ctx, id, bson.M{"$pull": bson.M{scope.field: url}})
	if err != nil {
		h.Log.Warnw("materials sync failed", "collection", scope.col, "id", id.Hex(), "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

func (h *Handler) entityExists(c *gin.Context, scope fileScope, id primitive.ObjectID) bool {
	ctx, cancel := dbContext(c)
	defer cancel()

	n, err := h.col(scope.col).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to upload files", err)
		return false
	}
	if n == 0 {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", scope.name), nil)
		return false
	}
	return true
}
