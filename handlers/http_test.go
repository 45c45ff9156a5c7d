package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/handlers"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/routes"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/utils"
)

func mustToken(t *testing.T, secret []byte) string {
	t.Helper()
	token, err := utils.GenerateJwt(secret, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	return token
}

// newRouter wires the full route table against a handler with no database.
// Every request in this file must be answered before storage is touched.
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := handlers.New(nil, zap.NewNop().Sugar(), t.TempDir())
	r := gin.New()
	routes.Register(r, h, handlers.NewAuth(h, nil), nil)
	return r
}

func TestListTasksInvalidProjectFilter(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?project=not-an-id", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []json.RawMessage `json:"items"`
		Total int64             `json:"total"`
		Page  int64             `json:"page"`
		Pages int64             `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
	assert.Equal(t, int64(0), body.Total)
	assert.Equal(t, int64(1), body.Page)
	assert.Equal(t, int64(0), body.Pages)
}

func TestListTasksInvalidLessonFilter(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?lesson=zzz&page=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestGetTaskMalformedID(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/not-hex", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id")
}

func TestCreateTaskRejectsUnknownFields(t *testing.T) {
	r := newRouter(t)

	body := `{"title":"t","description":"d","priority":"high","status":"pending","dueDate":"2026-09-01T00:00:00Z","bogus":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bogus")
}

func TestCreateTaskValidation(t *testing.T) {
	r := newRouter(t)

	cases := []string{
		`{}`,
		`{"title":"t"}`,
		`{"title":"t","description":"d","priority":"extreme","status":"pending","dueDate":"2026-09-01T00:00:00Z"}`,
		`{"title":"t","description":"d","priority":"high","status":"almost-done","dueDate":"2026-09-01T00:00:00Z"}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	r := newRouter(t)

	// progress out of range
	body := `{"name":"p","description":"d","status":"active","priority":"low","startDate":"2026-09-01T00:00:00Z","progress":150}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLessonFileTraversal(t *testing.T) {
	r := newRouter(t)
	lessonID := primitive.NewObjectID().Hex()

	names := []string{
		"..%2F..%2F..%2Fetc%2Fpasswd", // encoded slashes, one path segment
		"..",
		"%2E%2E",
	}
	for _, name := range names {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			"/api/school/lessons/"+lessonID+"/files/"+name, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "name: %s", name)
		assert.Contains(t, w.Body.String(), "Invalid file path", "name: %s", name)
	}
}

func TestDeleteLessonFileMissing(t *testing.T) {
	r := newRouter(t)
	lessonID := primitive.NewObjectID().Hex()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete,
		"/api/school/lessons/"+lessonID+"/files/1700000000000_notes.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLessonFilesEmptyDir(t *testing.T) {
	r := newRouter(t)
	lessonID := primitive.NewObjectID().Hex()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/school/lessons/"+lessonID+"/files", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestAuthRequiredWhenSecretSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.New(nil, zap.NewNop().Sugar(), t.TempDir())
	r := gin.New()
	secret := []byte("secret")
	routes.Register(r, h, handlers.NewAuth(h, secret), secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?project=not-an-id", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A valid token gets through to the handler.
	token := mustToken(t, secret)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/tasks?project=not-an-id", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
