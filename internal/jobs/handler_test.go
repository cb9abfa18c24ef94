package jobs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/masterchiefff/jobfit-server/internal/bootstrap"
	"github.com/masterchiefff/jobfit-server/internal/shared/config"
)

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestCreateAndListJobs(t *testing.T) {
	router := buildTestRouter(t)

	payload := map[string]any{
		"title":    "Backend Engineer",
		"company":  "Acme",
		"type":     "full-time",
		"location": "Nairobi",
		"description": map[string]any{
			"summary": "Build APIs",
			"stack":   []string{"Go", "PostgreSQL"},
		},
		"salary": 120000,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Salary int64  `json:"salary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.ID == "" || created.Title != "Backend Engineer" || created.Salary != 120000 {
		t.Fatalf("unexpected created job: %+v", created)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	reqList.Header.Set("X-Guest-Id", "test-guest")
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respList.Code)
	}
	var listed []struct {
		ID          string          `json:"id"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", listed)
	}
	var desc struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(listed[0].Description, &desc); err != nil {
		t.Fatalf("decode description: %v", err)
	}
	if desc.Summary != "Build APIs" {
		t.Fatalf("unexpected description: %+v", desc)
	}
}

func TestCreateJobValidation(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader([]byte(`{"title":""}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListJobsEmpty(t *testing.T) {
	router := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var listed []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty list, got %d", len(listed))
	}
}
