package tasks

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func tasksRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := NewExtractor()
	e.Now = func() time.Time {
		return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	}

	r := gin.New()
	NewHandler(e).RegisterRoutes(r.Group("/tasks"))
	return r
}

type extractResp struct {
	Summary string `json:"summary"`
	Total   int    `json:"total"`
	Tasks   []struct {
		TaskTitle string `json:"task_title"`
		Priority  string `json:"priority"`
	} `json:"tasks"`
}

func TestExtractEndpointRawBody(t *testing.T) {
	r := tasksRouter(t)

	body := "Meeting notes. We agreed on scope.\nTODO: call the vendor\n"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks/extract", strings.NewReader(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp extractResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || len(resp.Tasks) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Tasks[0].TaskTitle != "call the vendor" || resp.Tasks[0].Priority != PriorityMedium {
		t.Fatalf("task = %+v", resp.Tasks[0])
	}
	if !strings.Contains(resp.Summary, "Meeting notes.") {
		t.Fatalf("summary = %q", resp.Summary)
	}
}

func TestExtractEndpointMultipart(t *testing.T) {
	r := tasksRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	// invalid UTF-8 bytes must be dropped, not fatal
	if _, err := part.Write([]byte("Please review the draft\n\xff\xfe\n")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp extractResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Tasks[0].TaskTitle != "Please review the draft" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestExtractEndpointEmptyDocument(t *testing.T) {
	r := tasksRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks/extract", strings.NewReader("   \n "))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	r := tasksRouter(t)

	body := `{"tasks":[{"task_title":"call the vendor","owner":"","due_date":"","priority":"Medium"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("content disposition = %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if lines[0] != "task_title,owner,due_date,priority" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "call the vendor,") {
		t.Fatalf("row = %q", lines[1])
	}
}
