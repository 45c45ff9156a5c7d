package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const dbTimeout = 5 * time.Second

// Handler carries the injected dependencies every route shares. Collections
// are addressed by name through the single database handle; nothing here is
// package-global.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.SugaredLogger
	UploadDir string
}

func New(db *mongo.Database, log *zap.SugaredLogger, uploadDir string) *Handler {
	return &Handler{DB: db, Log: log, UploadDir: uploadDir}
}

func (h *Handler) col(name string) *mongo.Collection {
	return h.DB.Collection(name)
}

func dbContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

// respondError writes the uniform {error, details} body.
func respondError(c *gin.Context, status int, msg string, err error) {
	body := gin.H{"error": msg}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}

// bindStrict decodes the body rejecting unknown fields, then runs the
// binding validator so the oneof/required tags apply.
func bindStrict(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second JSON value after the first document is also malformed input.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected trailing data")
	}
	return binding.Validator.ValidateStruct(dst)
}

// pathID parses the :id path segment, answering 400 itself on a malformed id.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}
