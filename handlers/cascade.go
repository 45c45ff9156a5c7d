package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// unsetTaskField bulk-clears a reference field (project, lesson or category)
// from every task pointing at a deleted parent. One UpdateMany per cascade;
// best-effort like the per-task sync, with the reconciler as backstop.
func (h *Handler) unsetTaskField(field string, parent primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	res, err := h.col("tasks").UpdateMany(ctx,
		bson.M{field: parent},
		bson.M{"$unset": bson.M{field: ""}},
	)
	if err != nil {
		h.Log.Warnw("cascade unset failed", "field", field, "parent", parent.Hex(), "error", err)
		return
	}
	if res.ModifiedCount > 0 {
		h.Log.Infow("cascade unset", "field", field, "parent", parent.Hex(), "tasks", res.ModifiedCount)
	}
}
