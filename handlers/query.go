package handlers

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListQuery is the pagination window parsed from page/limit query params.
type ListQuery struct {
	Page  int64
	Limit int64
	Skip  int64
}

// ParseListQuery reads 1-based page and limit, falling back to the entity's
// default page size on anything non-positive or non-numeric.
func ParseListQuery(v url.Values, defaultLimit int64) ListQuery {
	page, err := strconv.ParseInt(v.Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(v.Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return ListQuery{Page: page, Limit: limit, Skip: (page - 1) * limit}
}

// Pages is ceil(total/limit).
func Pages(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// orSearch adds a case-insensitive substring match over fields. The query is
// quoted so regex metacharacters in user input match literally.
func orSearch(filter bson.M, q string, fields ...string) {
	if q == "" {
		return
	}
	pattern := regexp.QuoteMeta(q)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	filter["$or"] = or
}

func eqParam(filter bson.M, v url.Values, param, field string) {
	if val := v.Get(param); val != "" {
		filter[field] = val
	}
}

// refParam narrows by an ObjectID reference. A malformed id reports false so
// the endpoint can return an empty envelope instead of an error.
func refParam(filter bson.M, v url.Values, param, field string) bool {
	raw := v.Get(param)
	if raw == "" {
		return true
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return false
	}
	filter[field] = oid
	return true
}

// dateRange narrows field by from/to bounds. Accepts RFC3339 or plain dates;
// an unparsable bound is ignored.
func dateRange(filter bson.M, v url.Values, field string) {
	bounds := bson.M{}
	if t, ok := parseDate(v.Get("from")); ok {
		bounds["$gte"] = t
	}
	if t, ok := parseDate(v.Get("to")); ok {
		bounds["$lte"] = t
	}
	if len(bounds) > 0 {
		filter[field] = bounds
	}
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ContactFilter: q over names/email/company, plus type.
func ContactFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "type", "type")
	orSearch(filter, v.Get("q"), "firstName", "lastName", "email", "company")
	return filter
}

// TaskFilter builds the tasks list filter. category carries a pre-resolved
// category id when the caller filtered by name; the categoryId query param
// covers direct id filtering. The bool is false when a reference filter can
// never match.
func TaskFilter(v url.Values, category *primitive.ObjectID) (bson.M, bool) {
	filter := bson.M{}
	eqParam(filter, v, "status", "status")
	eqParam(filter, v, "priority", "priority")
	eqParam(filter, v, "type", "type")
	eqParam(filter, v, "tag", "tags")
	orSearch(filter, v.Get("q"), "title", "description")
	dateRange(filter, v, "dueDate")
	if !refParam(filter, v, "project", "project") {
		return nil, false
	}
	if !refParam(filter, v, "lesson", "lesson") {
		return nil, false
	}
	if category != nil {
		filter["category"] = *category
	} else if !refParam(filter, v, "categoryId", "category") {
		return nil, false
	}
	return filter, true
}

func ProjectFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "status", "status")
	eqParam(filter, v, "priority", "priority")
	eqParam(filter, v, "tag", "tags")
	orSearch(filter, v.Get("q"), "name", "description")
	dateRange(filter, v, "startDate")
	return filter
}

func LessonFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "subject", "subject")
	eqParam(filter, v, "type", "type")
	if completed := v.Get("completed"); completed != "" {
		filter["completed"] = completed == "true"
	}
	orSearch(filter, v.Get("q"), "title", "subject", "instructor")
	dateRange(filter, v, "date")
	return filter
}

func TestFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "subject", "subject")
	eqParam(filter, v, "type", "type")
	orSearch(filter, v.Get("q"), "title", "subject")
	dateRange(filter, v, "date")
	return filter
}

func EventFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "type", "type")
	orSearch(filter, v.Get("q"), "title", "description", "location")
	dateRange(filter, v, "startDate")
	return filter
}

func NotificationFilter(v url.Values) bson.M {
	filter := bson.M{}
	eqParam(filter, v, "type", "type")
	eqParam(filter, v, "entityType", "entityType")
	if read := v.Get("read"); read != "" {
		filter["read"] = read == "true"
	}
	return filter
}

func CategoryFilter(v url.Values) bson.M {
	filter := bson.M{}
	orSearch(filter, v.Get("q"), "name", "description")
	return filter
}
