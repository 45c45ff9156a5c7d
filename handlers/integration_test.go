package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/handlers"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/routes"
)

// These tests exercise the relation-sync behavior against a live MongoDB.
// Set MONGO_TEST_URI to run them; they use a throwaway database per test.

func testEnv(t *testing.T) (*gin.Engine, *mongo.Database) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("pma_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db.Drop(ctx)
		client.Disconnect(ctx)
	})

	gin.SetMode(gin.TestMode)
	h := handlers.New(db, zap.NewNop().Sugar(), t.TempDir())
	r := gin.New()
	routes.Register(r, h, handlers.NewAuth(h, nil), nil)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.ID)
	return body.ID
}

func createProject(t *testing.T, r *gin.Engine, name string) string {
	w := doJSON(t, r, http.MethodPost, "/api/projects", fmt.Sprintf(
		`{"name":%q,"description":"d","status":"active","priority":"medium","startDate":"2026-09-01T00:00:00Z","progress":0}`, name))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(t, w)
}

func createLesson(t *testing.T, r *gin.Engine, title string) string {
	w := doJSON(t, r, http.MethodPost, "/api/lessons", fmt.Sprintf(
		`{"title":%q,"subject":"math","type":"lecture","date":"2026-09-01T09:00:00Z","duration":90}`, title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(t, w)
}

func createTask(t *testing.T, r *gin.Engine, extra string) string {
	body := `{"title":"t","description":"d","priority":"high","status":"pending","dueDate":"2026-09-10T00:00:00Z"` + extra + `}`
	w := doJSON(t, r, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeID(t, w)
}

func projectTasks(t *testing.T, r *gin.Engine, id string) []string {
	w := doJSON(t, r, http.MethodGet, "/api/projects/"+id, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Tasks []string `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Tasks
}

func lessonTasks(t *testing.T, r *gin.Engine, id string) []string {
	w := doJSON(t, r, http.MethodGet, "/api/lessons/"+id, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Tasks []string `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Tasks
}

func mustOID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func count(values []string, v string) int {
	n := 0
	for _, x := range values {
		if x == v {
			n++
		}
	}
	return n
}

func TestCreateTaskSyncsProject(t *testing.T) {
	r, _ := testEnv(t)

	projectID := createProject(t, r, "p1")
	taskID := createTask(t, r, `,"project":"`+projectID+`"`)

	assert.Equal(t, 1, count(projectTasks(t, r, projectID), taskID))
}

func TestCreateTaskProjectIDAlias(t *testing.T) {
	r, _ := testEnv(t)

	projectID := createProject(t, r, "p1")
	taskID := createTask(t, r, `,"projectId":"`+projectID+`"`)

	// The alias maps onto the canonical field and the parent array syncs.
	w := doJSON(t, r, http.MethodGet, "/api/tasks/"+taskID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"project":"`+projectID+`"`)
	assert.Equal(t, 1, count(projectTasks(t, r, projectID), taskID))
}

func TestUpdateTaskMovesBetweenProjects(t *testing.T) {
	r, _ := testEnv(t)

	p1 := createProject(t, r, "p1")
	p2 := createProject(t, r, "p2")
	taskID := createTask(t, r, `,"project":"`+p1+`"`)

	w := doJSON(t, r, http.MethodPatch, "/api/tasks/"+taskID, `{"project":"`+p2+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 0, count(projectTasks(t, r, p1), taskID))
	assert.Equal(t, 1, count(projectTasks(t, r, p2), taskID))
}

func TestUpdateTaskClearsProject(t *testing.T) {
	r, _ := testEnv(t)

	p1 := createProject(t, r, "p1")
	taskID := createTask(t, r, `,"project":"`+p1+`"`)

	w := doJSON(t, r, http.MethodPatch, "/api/tasks/"+taskID, `{"project":""}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 0, count(projectTasks(t, r, p1), taskID))

	got := doJSON(t, r, http.MethodGet, "/api/tasks/"+taskID, "")
	assert.NotContains(t, got.Body.String(), `"project"`)
}

func TestUpdateTaskNoopKeepsSingleEntry(t *testing.T) {
	r, _ := testEnv(t)

	p1 := createProject(t, r, "p1")
	taskID := createTask(t, r, `,"project":"`+p1+`"`)

	// Re-asserting the same project must not duplicate the array entry.
	w := doJSON(t, r, http.MethodPatch, "/api/tasks/"+taskID, `{"project":"`+p1+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, count(projectTasks(t, r, p1), taskID))
}

func TestAddToSetIdempotent(t *testing.T) {
	r, db := testEnv(t)

	p1 := createProject(t, r, "p1")
	taskID := createTask(t, r, `,"project":"`+p1+`"`)

	// A second raw $addToSet of the same id is a no-op.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pid, tid := mustOID(t, p1), mustOID(t, taskID)
	_, err := db.Collection("projects").UpdateByID(ctx, pid,
		bson.M{"$addToSet": bson.M{"tasks": tid}})
	require.NoError(t, err)

	assert.Equal(t, 1, count(projectTasks(t, r, p1), taskID))
}

func TestDeleteTaskPullsFromLesson(t *testing.T) {
	r, _ := testEnv(t)

	lessonID := createLesson(t, r, "algebra")
	taskID := createTask(t, r, `,"lesson":"`+lessonID+`"`)
	require.Equal(t, 1, count(lessonTasks(t, r, lessonID), taskID))

	w := doJSON(t, r, http.MethodDelete, "/api/tasks/"+taskID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Task deleted")

	assert.Equal(t, 0, count(lessonTasks(t, r, lessonID), taskID))
}

func TestDeleteProjectClearsTaskRefs(t *testing.T) {
	r, _ := testEnv(t)

	p1 := createProject(t, r, "p1")
	t1 := createTask(t, r, `,"project":"`+p1+`"`)
	t2 := createTask(t, r, `,"project":"`+p1+`"`)

	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+p1, "")
	require.Equal(t, http.StatusOK, w.Code)

	for _, id := range []string{t1, t2} {
		got := doJSON(t, r, http.MethodGet, "/api/tasks/"+id, "")
		require.Equal(t, http.StatusOK, got.Code)
		assert.NotContains(t, got.Body.String(), `"project"`)
	}
}

func TestDeleteCategoryCascade(t *testing.T) {
	r, _ := testEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/task-categories", `{"name":"homework"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	catID := decodeID(t, w)

	t1 := createTask(t, r, `,"category":"`+catID+`"`)
	t2 := createTask(t, r, `,"category":"`+catID+`"`)

	w = doJSON(t, r, http.MethodDelete, "/api/task-categories/"+catID, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, id := range []string{t1, t2} {
		got := doJSON(t, r, http.MethodGet, "/api/tasks/"+id, "")
		require.Equal(t, http.StatusOK, got.Code)
		assert.NotContains(t, got.Body.String(), `"category"`)
	}
}

func TestGetTaskDanglingCategory(t *testing.T) {
	r, db := testEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/task-categories", `{"name":"homework"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	catID := decodeID(t, w)
	taskID := createTask(t, r, `,"category":"`+catID+`"`)

	// Resolved reference comes back as the full category document.
	got := doJSON(t, r, http.MethodGet, "/api/tasks/"+taskID, "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), `"name":"homework"`)

	// Remove the category behind the API's back so the reference dangles;
	// the raw id must stay visible rather than vanish from the response.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := db.Collection("task_categories").DeleteOne(ctx, bson.M{"_id": mustOID(t, catID)})
	require.NoError(t, err)

	got = doJSON(t, r, http.MethodGet, "/api/tasks/"+taskID, "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), `"category":"`+catID+`"`)
}

func TestCategoryNameFilter(t *testing.T) {
	r, _ := testEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/task-categories", `{"name":"Homework"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	catID := decodeID(t, w)

	taskID := createTask(t, r, `,"category":"`+catID+`"`)
	createTask(t, r, "")

	// Name resolves case-insensitively.
	got := doJSON(t, r, http.MethodGet, "/api/tasks?category=homework", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), taskID)
	assert.Contains(t, got.Body.String(), `"total":1`)

	// An unknown name matches nothing.
	got = doJSON(t, r, http.MethodGet, "/api/tasks?category=nope", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), `"total":0`)
}

func TestPaginationEnvelope(t *testing.T) {
	r, _ := testEnv(t)

	for i := 0; i < 5; i++ {
		createTask(t, r, "")
	}

	got := doJSON(t, r, http.MethodGet, "/api/tasks?limit=2&page=2", "")
	require.Equal(t, http.StatusOK, got.Code)

	var body struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
		Page  int64             `json:"page"`
		Pages int64             `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Total)
	assert.Equal(t, int64(2), body.Page)
	assert.Equal(t, int64(3), body.Pages)
	assert.Len(t, body.Items, 2)
}

func TestLessonFileUploadLifecycle(t *testing.T) {
	r, _ := testEnv(t)
	lessonID := createLesson(t, r, "calculus")

	// Non-PDF rejected, materials untouched.
	w := uploadFile(t, r, "/api/school/lessons/"+lessonID+"/files", "photo.png", "not a pdf")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got := doJSON(t, r, http.MethodGet, "/api/lessons/"+lessonID, "")
	assert.Contains(t, got.Body.String(), `"materials":[]`)

	// PDF accepted and recorded.
	w = uploadFile(t, r, "/api/school/lessons/"+lessonID+"/files", "notes.pdf", "%PDF-1.4 fake")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var uploaded struct {
		Uploaded []string `json:"uploaded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	require.Len(t, uploaded.Uploaded, 1)
	url := uploaded.Uploaded[0]
	assert.True(t, strings.HasPrefix(url, "/uploads/school/lessons/"+lessonID+"/"))
	assert.True(t, strings.HasSuffix(url, "_notes.pdf"))

	got = doJSON(t, r, http.MethodGet, "/api/lessons/"+lessonID, "")
	assert.Contains(t, got.Body.String(), url)

	// Listed, then deleted, then gone from materials.
	got = doJSON(t, r, http.MethodGet, "/api/school/lessons/"+lessonID+"/files", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), "_notes.pdf")

	name := url[strings.LastIndex(url, "/")+1:]
	got = doJSON(t, r, http.MethodDelete, "/api/school/lessons/"+lessonID+"/files/"+name, "")
	require.Equal(t, http.StatusOK, got.Code, got.Body.String())

	got = doJSON(t, r, http.MethodGet, "/api/lessons/"+lessonID, "")
	assert.NotContains(t, got.Body.String(), url)
}

func uploadFile(t *testing.T, r *gin.Engine, path, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}
