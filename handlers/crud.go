package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
)

// The eight collections share one list/get/update/delete skeleton; the
// entity files layer their filters, cascades and sync hooks on top of these.

func listDocs[T any](h *Handler, c *gin.Context, colName string, filter bson.M, sort bson.D, defaultLimit int64, name string) {
	lq := ParseListQuery(c.Request.URL.Query(), defaultLimit)
	ctx, cancel := dbContext(c)
	defer cancel()

	col := h.col(colName)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s", strings.ToLower(name)), err)
		return
	}

	opts := options.Find().SetSort(sort).SetSkip(lq.Skip).SetLimit(lq.Limit)
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s", strings.ToLower(name)), err)
		return
	}
	defer cursor.Close(ctx)

	items := make([]T, 0, lq.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to decode %s", strings.ToLower(name)), err)
		return
	}

	c.JSON(http.StatusOK, models.ListResult{
		Items: items,
		Total: total,
		Page:  lq.Page,
		Pages: Pages(total, lq.Limit),
	})
}

// emptyResult answers a filter that can never match: a valid 200 with
// nothing in it, not an error.
func emptyResult(c *gin.Context, defaultLimit int64) {
	lq := ParseListQuery(c.Request.URL.Query(), defaultLimit)
	c.JSON(http.StatusOK, models.ListResult{
		Items: []struct{}{},
		Total: 0,
		Page:  lq.Page,
		Pages: 0,
	})
}

func fetchOne[T any](h *Handler, c *gin.Context, colName string, id primitive.ObjectID, name string) (T, bool) {
	var doc T
	ctx, cancel := dbContext(c)
	defer cancel()

	err := h.col(colName).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", name), nil)
		return doc, false
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s", strings.ToLower(name)), err)
		return doc, false
	}
	return doc, true
}

func insertDoc(h *Handler, c *gin.Context, colName string, doc any, name string) (primitive.ObjectID, bool) {
	ctx, cancel := dbContext(c)
	defer cancel()

	res, err := h.col(colName).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, fmt.Sprintf("%s already exists", name), err)
		} else {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Failed to create %s", strings.ToLower(name)), err)
		}
		return primitive.NilObjectID, false
	}
	return res.InsertedID.(primitive.ObjectID), true
}

// updateOne applies the allow-listed changes, stamps updatedAt and returns
// the post-update document.
func updateOne[T any](h *Handler, c *gin.Context, colName string, id primitive.ObjectID, set, unset bson.M, name string) (T, bool) {
	var doc T
	set["updatedAt"] = time.Now().UTC()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := h.col(colName).FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", name), nil)
		return doc, false
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, fmt.Sprintf("%s already exists", name), err)
		} else {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Failed to update %s", strings.ToLower(name)), err)
		}
		return doc, false
	}
	return doc, true
}

// removeOne deletes by id and hands back the removed document so callers can
// run their cascades against the final field values.
func removeOne[T any](h *Handler, c *gin.Context, colName string, id primitive.ObjectID, name string) (T, bool) {
	var doc T
	ctx, cancel := dbContext(c)
	defer cancel()

	err := h.col(colName).FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		respondError(c, http.StatusNotFound, fmt.Sprintf("%s not found", name), nil)
		return doc, false
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to delete %s", strings.ToLower(name)), err)
		return doc, false
	}
	return doc, true
}
