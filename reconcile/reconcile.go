// Package reconcile repairs drift between Task.project/Task.lesson and the
// denormalized tasks arrays on projects and lessons. The per-request sync is
// best-effort; this pass recomputes each parent's array from the tasks
// collection, which is authoritative, and rewrites only arrays that differ.
package reconcile

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Reconciler struct {
	DB       *mongo.Database
	Log      *zap.SugaredLogger
	Interval time.Duration
}

func New(db *mongo.Database, log *zap.SugaredLogger, interval time.Duration) *Reconciler {
	return &Reconciler{DB: db, Log: log, Interval: interval}
}

// Run executes a pass every interval until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Pass(ctx); err != nil {
				r.Log.Warnw("reconcile pass failed", "error", err)
			}
		}
	}
}

// Pass reconciles both parent collections once.
func (r *Reconciler) Pass(ctx context.Context) error {
	if err := r.reconcileParent(ctx, "projects", "project"); err != nil {
		return err
	}
	return r.reconcileParent(ctx, "lessons", "lesson")
}

type parentDoc struct {
	ID    primitive.ObjectID   `bson:"_id"`
	Tasks []primitive.ObjectID `bson:"tasks"`
}

func (r *Reconciler) reconcileParent(ctx context.Context, parentCol, refField string) error {
	want, err := r.taskIDsByParent(ctx, refField)
	if err != nil {
		return err
	}

	cursor, err := r.DB.Collection(parentCol).Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"tasks": 1}))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var parent parentDoc
		if err := cursor.Decode(&parent); err != nil {
			return err
		}
		correct := want[parent.ID]
		if sameIDSet(parent.Tasks, correct) {
			continue
		}
		if correct == nil {
			correct = []primitive.ObjectID{}
		}
		_, err := r.DB.Collection(parentCol).UpdateByID(ctx, parent.ID,
			bson.M{"$set": bson.M{"tasks": correct}})
		if err != nil {
			r.Log.Warnw("reconcile update failed",
				"collection", parentCol, "id", parent.ID.Hex(), "error", err)
			continue
		}
		r.Log.Infow("reconciled tasks array",
			"collection", parentCol,
			"id", parent.ID.Hex(),
			"had", len(parent.Tasks),
			"now", len(correct),
		)
	}
	return cursor.Err()
}

// taskIDsByParent groups task ids by their parent reference.
func (r *Reconciler) taskIDsByParent(ctx context.Context, refField string) (map[primitive.ObjectID][]primitive.ObjectID, error) {
	cursor, err := r.DB.Collection("tasks").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{refField: bson.M{"$type": "objectId"}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + refField,
			"tasks": bson.M{"$addToSet": "$_id"},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make(map[primitive.ObjectID][]primitive.ObjectID)
	for cursor.Next(ctx) {
		var group parentDoc
		if err := cursor.Decode(&group); err != nil {
			return nil, err
		}
		sortIDs(group.Tasks)
		out[group.ID] = group.Tasks
	}
	return out, cursor.Err()
}

func sortIDs(ids []primitive.ObjectID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Hex() < ids[j].Hex() })
}

// sameIDSet compares two id lists ignoring order and duplicates.
func sameIDSet(a, b []primitive.ObjectID) bool {
	set := make(map[primitive.ObjectID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	other := make(map[primitive.ObjectID]struct{}, len(b))
	for _, id := range b {
		other[id] = struct{}{}
	}
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}
